package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"tomlmap"
)

const (
	dataFile     = "TestData.toml"
	combinedFile = "TestDataCombined.toml"
)

type MainConfig struct {
	Verbose bool `cli:"name=v aliases=verbose desc='log every converted field'"`

	Main *cli.Command
}

// codec builds a codec logging to w at the level chosen by -v.
func (cfg *MainConfig) codec(w io.Writer) *tomlmap.Codec {
	return tomlmap.NewBuilder().
		WithLogger(newLogger(w, cfg.Verbose)).
		WithIndent("  ").
		MustBuild()
}

type DirConfig struct {
	*MainConfig
	Dir string `cli:"name=dir desc='directory holding the demo files'"`

	Command *cli.Command
}

func (cfg *DirConfig) path(name string) (string, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Abs(filepath.Join(dir, name))
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "tomlmap-demo").
		WithSynopsis("tomlmap-demo [-v] command [opts]").
		WithDescription("tomlmap-demo writes sample objects as TOML and reads them back.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return demoMain(cfg, cc, args)
		}).
		WithSubs(
			WriteCommand(cfg),
			ReadCommand(cfg))
}

func WriteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DirConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "write").
		WithAliases("w").
		WithSynopsis("write [-dir d]").
		WithDescription("write TestData and the combined TestData/TestData2 document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return write(cfg, cc, args)
		})
}

func ReadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DirConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "read").
		WithAliases("r").
		WithSynopsis("read [-dir d]").
		WithDescription("read TestData.toml into a type without defaults and print it").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return read(cfg, cc, args)
		})
}

func demoMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	return sub.Run(cc, args[1:])
}

func write(cfg *DirConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Command.Parse(cc, args); err != nil {
		return err
	}
	codec := cfg.codec(os.Stderr)

	path, err := cfg.path(dataFile)
	if err != nil {
		return err
	}
	if err := codec.ToFile(path, NewTestData()); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	combined, err := cfg.path(combinedFile)
	if err != nil {
		return err
	}
	objs := []any{NewTestData(), NewTestData2()}
	if err := codec.ToFile(combined, objs); err != nil {
		return fmt.Errorf("could not write %s: %w", combined, err)
	}

	if cfg.Verbose {
		return codec.Dump(cc.Out, objs)
	}
	return nil
}

func read(cfg *DirConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Command.Parse(cc, args); err != nil {
		return err
	}

	path, err := cfg.path(dataFile)
	if err != nil {
		return err
	}
	data, err := tomlmap.Load[*TestDataNoDefault](cfg.codec(os.Stderr), path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	printFields(cc.Out, data, useColor(cc.Out))
	return nil
}

// printFields writes one "Name: <field> Value: <value>" line per exported
// field. Pointers are shown by their target value.
func printFields(w io.Writer, data any, colored bool) {
	name := fmt.Sprint
	value := fmt.Sprint
	if colored {
		name = color.New(color.FgYellow).Sprint
		value = color.New(color.FgCyan).Sprint
	}

	v := reflect.Indirect(reflect.ValueOf(data))
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := v.Field(i)
		if fv.Kind() == reflect.Pointer && !fv.IsNil() {
			fv = fv.Elem()
		}
		fmt.Fprintf(w, "Name: %s Value: %s\n", name(field.Name), value(fv.Interface()))
	}
}

func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
