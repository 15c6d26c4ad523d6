package main

import (
	"github.com/shopspring/decimal"
)

// TestData is written under its own [TestData] table.
type TestData struct {
	StringValue  string  `comment:"A plain string" order:"2"`
	NullString   *string `comment:"Written as an empty string"`
	IntValue     int     `comment:"Comes first" order:"0"`
	UintValue    uint64  `toml:"UnsignedValue"`
	FloatValue   float32 `comment:"Written without float32 noise" order:"1"`
	DoubleValue  float64
	DecimalValue decimal.Decimal `comment:"Stored as a float"`
	BoolValue    bool
	IntArray     []int `comment:"Collections hold integers and strings"`
	StringArray  []string
	FloatArray   []float64 `comment:"Whole floats are written as integers"`
	SkipMe       string    `toml:"-"`
	Channel      chan int  `comment:"Unsupported types are skipped"`
}

func (TestData) TableName() string { return "TestData" }

func NewTestData() *TestData {
	return &TestData{
		StringValue:  "Hello from tomlmap",
		IntValue:     42,
		UintValue:    1 << 40,
		FloatValue:   0.1,
		DoubleValue:  3.14159,
		DecimalValue: decimal.RequireFromString("1234.5678"),
		BoolValue:    true,
		IntArray:     []int{1, 2, 3},
		StringArray:  []string{"one", "two"},
		FloatArray:   []float64{1, 2, 3},
		SkipMe:       "never written",
	}
}

// TestData2 has no table name, so its fields land in the document root.
type TestData2 struct {
	Title   string `comment:"Root level title"`
	Version int
	Enabled bool
}

func NewTestData2() *TestData2 {
	return &TestData2{
		Title:   "Combined document",
		Version: 2,
		Enabled: true,
	}
}

// TestDataNoDefault reads the [TestData] table back without any defaults.
type TestDataNoDefault struct {
	_            struct{} `table:"TestData"`
	StringValue  string
	NullString   *string
	IntValue     int
	UintValue    uint64 `toml:"UnsignedValue"`
	FloatValue   float32
	DoubleValue  float64
	DecimalValue decimal.Decimal
	BoolValue    bool
	IntArray     []int
	StringArray  []string
	FloatArray   []float64
	SkipMe       string `toml:"-"`
}
