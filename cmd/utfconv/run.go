package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"

	"github.com/wippyai/textconv/host"
)

type runOptions struct {
	module      string
	funcName    string
	args        []string
	memoryPages uint32
	metrics     bool
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run <guest.wasm>",
		Short: "Run a WebAssembly guest linked against the conversion host module",
		Long: `Run instantiates the conversion host module and WASI preview1, then
instantiates the guest. Without --func the guest's _start runs; with --func
the named export is called with the --arg values as i32/i64 parameters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuest(cmd.Context(), cmd, args[0], opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.module, "module-name", host.DefaultModuleName, "Import module name of the host functions")
	f.StringVar(&opts.funcName, "func", "", "Exported function to call after instantiation")
	f.StringSliceVar(&opts.args, "arg", nil, "Integer arguments for --func")
	f.Uint32Var(&opts.memoryPages, "memory-pages", 0, "Guest memory limit in 64KiB pages (0 for the default)")
	f.BoolVar(&opts.metrics, "metrics", false, "Print conversion counters after the guest finishes")
	return cmd
}

func runGuest(ctx context.Context, cmd *cobra.Command, path string, opts runOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	wasm, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	params, err := parseArgs(opts.args)
	if err != nil {
		return err
	}

	cfg := wazero.NewRuntimeConfig()
	if opts.memoryPages > 0 {
		cfg = cfg.WithMemoryLimitPages(opts.memoryPages)
	}
	r := wazero.NewRuntimeWithConfig(ctx, cfg)
	defer r.Close(ctx)

	reg := prometheus.NewRegistry()
	metrics, err := host.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		return fmt.Errorf("instantiate wasi: %w", err)
	}
	hostOpts := []host.Option{
		host.WithModuleName(opts.module),
		host.WithFlags(flags()),
		host.WithLogger(rootLogger.Named("host")),
		host.WithMetrics(metrics),
	}
	if _, err := host.Instantiate(ctx, r, hostOpts...); err != nil {
		return err
	}

	compiled, err := r.CompileModule(ctx, wasm)
	if err != nil {
		return fmt.Errorf("compile guest: %w", err)
	}
	modCfg := wazero.NewModuleConfig().
		WithName("guest").
		WithArgs(path).
		WithStdin(cmd.InOrStdin()).
		WithStdout(cmd.OutOrStdout()).
		WithStderr(cmd.ErrOrStderr())
	if opts.funcName != "" {
		modCfg = modCfg.WithStartFunctions()
	}
	mod, err := r.InstantiateModule(ctx, compiled, modCfg)
	if err != nil {
		return fmt.Errorf("instantiate guest: %w", err)
	}

	if opts.funcName != "" {
		fn := mod.ExportedFunction(opts.funcName)
		if fn == nil {
			return fmt.Errorf("function %q not exported", opts.funcName)
		}
		results, err := fn.Call(ctx, params...)
		if err != nil {
			return fmt.Errorf("call %s: %w", opts.funcName, err)
		}
		rootLogger.Debug("guest call returned",
			zap.String("func", opts.funcName),
			zap.Uint64s("results", results))
		for _, v := range results {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
	}

	if opts.metrics {
		return printMetrics(cmd, reg)
	}
	return nil
}

func parseArgs(args []string) ([]uint64, error) {
	out := make([]uint64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseInt(a, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", a, err)
		}
		out = append(out, uint64(v))
	}
	return out, nil
}

func printMetrics(cmd *cobra.Command, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	var lines []string
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			line := fam.GetName() + "{"
			for i, lp := range m.GetLabel() {
				if i > 0 {
					line += ","
				}
				line += lp.GetName() + "=" + strconv.Quote(lp.GetValue())
			}
			line += "} " + strconv.FormatFloat(m.GetCounter().GetValue(), 'f', -1, 64)
			lines = append(lines, line)
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(cmd.ErrOrStderr(), l)
	}
	return nil
}
