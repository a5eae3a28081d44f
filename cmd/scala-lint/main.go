package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"scala-lint/analysis"
	"scala-lint/symbols"
	"scala-lint/util"
)

func buildEngine(ctx *cli.Context) (*analysis.Engine, error) {
	table := symbols.NewTable()
	for _, file := range ctx.StringSlice("symbols") {
		manifest, err := symbols.LoadManifest(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load symbol manifest %s: %w", file, err)
		}
		table.Add(manifest)
	}
	return analysis.New(table), nil
}

func gatherFiles(ctx *cli.Context) ([]string, error) {
	patterns := ctx.Args().Slice()
	if len(patterns) == 0 {
		patterns = []string{"**/*.scala"}
	}
	excludes := ctx.StringSlice("exclude")

	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %s: %w", pattern, err)
		}
	matched:
		for _, path := range matches {
			for _, ex := range excludes {
				skip, err := doublestar.Match(ex, path)
				if err != nil {
					return nil, fmt.Errorf("bad exclude pattern %s: %w", ex, err)
				}
				if skip {
					continue matched
				}
			}
			files = append(files, path)
		}
	}
	return files, nil
}

func lint(ctx *cli.Context) error {
	eng, err := buildEngine(ctx)
	if err != nil {
		return err
	}
	eng.Fixes = ctx.Bool("fix")

	files, err := gatherFiles(ctx)
	if err != nil {
		return err
	}

	found := 0
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", file, err)
		}

		if err := eng.SetFileContext(file, data); err != nil {
			return fmt.Errorf("failed to analyse file %s: %w", file, err)
		}

		diags, err := eng.Diagnostics(file)
		if err != nil {
			return fmt.Errorf("failed to analyse file %s: %w", file, err)
		}
		found += len(diags)

		for _, out := range diags {
			fmt.Printf(
				"%s:%d:%d\t%s (%s)\n",
				file,
				out.Range.Start.Line+1, out.Range.Start.Character+1,
				color.YellowString(out.Message), out.Source,
			)
		}

		if !ctx.Bool("fix") || len(diags) == 0 {
			continue
		}

		fixed, err := eng.Fix(file)
		if err != nil {
			return fmt.Errorf("failed to fix file %s: %w", file, err)
		}
		switch {
		case ctx.Bool("write"):
			if err := os.WriteFile(file, fixed, os.ModePerm); err != nil {
				return fmt.Errorf("failed to write fixed file %s: %w", file, err)
			}
		case ctx.Bool("diff"):
			fmt.Print(util.Diff(string(data), string(fixed)))
		default:
			os.Stdout.Write(fixed)
		}
	}

	if found > 0 && !ctx.Bool("fix") {
		return cli.Exit(fmt.Sprintf("%d unused imports", found), 1)
	}
	return nil
}

func dump(ctx *cli.Context) error {
	eng, err := buildEngine(ctx)
	if err != nil {
		return err
	}

	files, err := gatherFiles(ctx)
	if err != nil {
		return err
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", file, err)
		}
		if err := eng.SetFileContext(file, data); err != nil {
			return fmt.Errorf("failed to analyse file %s: %w", file, err)
		}
		fctx, err := eng.GetFileContext(file)
		if err != nil {
			return fmt.Errorf("failed to analyse file %s: %w", file, err)
		}

		fmt.Printf("%s:\n", file)
		for _, id := range fctx.Clauses {
			repr.Println(eng.Clause(id))
		}
	}
	return nil
}

func main() {
	app := cli.App{
		Name:  "scala-lint",
		Usage: "find and remove unused imports in Scala sources",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "symbols",
				Usage: "symbol manifest describing importable modules; repeatable",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "glob of files to skip; repeatable",
			},
			&cli.BoolFlag{
				Name:  "fix",
				Usage: "rewrite the sources without their unused imports",
			},
			&cli.BoolFlag{
				Name:  "write",
				Usage: "with --fix, write results back in place",
			},
			&cli.BoolFlag{
				Name:  "diff",
				Usage: "with --fix, show a diff instead of the fixed source",
			},
		},
		Action: lint,
		Commands: []*cli.Command{
			{
				Name:   "dump",
				Usage:  "print the import clauses the analysis sees",
				Action: dump,
			},
		},
	}
	app.Run(os.Args)
}
