package host

import (
	"context"
	"math"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/textconv/errors"
	"github.com/wippyai/textconv/utf"
)

// NullTerminated is the src_len value asking for a terminator scan.
const NullTerminated = 0xFFFFFFFF

// NoProgress is the progress_ptr value for callers that only want the status.
const NoProgress = 0

var (
	i32 = api.ValueTypeI32

	convertParams = []api.ValueType{i32, i32, i32, i32, i32, i32}
	convertNames  = []string{"src_ptr", "src_len", "dst_ptr", "dst_cap", "progress_ptr", "flags"}
	lengthParams  = []api.ValueType{i32, i32, i32, i32}
	lengthNames   = []string{"src_ptr", "src_len", "progress_ptr", "flags"}
	bomParams     = []api.ValueType{i32, i32, i32}
	bomNames      = []string{"ptr", "len", "width"}
	statusResult  = []api.ValueType{i32}
)

type hostFunc struct {
	fn     api.GoModuleFunc
	name   string
	params []api.ValueType
	names  []string
}

// Instantiate registers the host module in r. Guests importing from the
// module name (DefaultModuleName unless overridden) must be instantiated
// afterwards.
func Instantiate(ctx context.Context, r wazero.Runtime, opts ...Option) (api.Module, error) {
	cfg := newConfig(opts)
	builder := r.NewHostModuleBuilder(cfg.name)
	for _, f := range cfg.funcs() {
		builder.NewFunctionBuilder().
			WithGoModuleFunction(f.fn, f.params, statusResult).
			WithParameterNames(f.names...).
			Export(f.name)
	}
	mod, err := builder.Instantiate(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseHost, errors.KindUnsupported, err, "instantiate host module "+cfg.name)
	}
	cfg.logger.Debug("host module instantiated",
		zap.String("module", cfg.name),
		zap.Int("directions", len(directions)),
	)
	return mod, nil
}

func (c *config) funcs() []hostFunc {
	out := make([]hostFunc, 0, 2*len(directions)+1)
	for _, d := range directions {
		cv := &converter{cfg: c, dir: d}
		out = append(out,
			hostFunc{fn: cv.convert, name: d.Name, params: convertParams, names: convertNames},
			hostFunc{fn: cv.length, name: d.Name + "_length", params: lengthParams, names: lengthNames},
		)
	}
	return append(out, hostFunc{fn: hasBOM, name: "has_bom", params: bomParams, names: bomNames})
}

type converter struct {
	cfg *config
	dir Direction
}

func (cv *converter) convert(_ context.Context, mod api.Module, stack []uint64) {
	srcPtr, srcLen := api.DecodeU32(stack[0]), api.DecodeU32(stack[1])
	dstPtr, dstCap := api.DecodeU32(stack[2]), api.DecodeU32(stack[3])
	progressPtr := api.DecodeU32(stack[4])
	flags := utf.Flags(api.DecodeU32(stack[5])) | cv.cfg.flags

	mem := mod.Memory()
	p, err := cv.transcode(mem, srcPtr, srcLen, dstPtr, dstCap, flags)
	stack[0] = cv.finish(mem, progressPtr, p, err)
}

func (cv *converter) length(_ context.Context, mod api.Module, stack []uint64) {
	srcPtr, srcLen := api.DecodeU32(stack[0]), api.DecodeU32(stack[1])
	progressPtr := api.DecodeU32(stack[2])
	flags := utf.Flags(api.DecodeU32(stack[3])) | cv.cfg.flags

	mem := mod.Memory()
	p, err := cv.measure(mem, srcPtr, srcLen, flags)
	stack[0] = cv.finish(mem, progressPtr, p, err)
}

func (cv *converter) transcode(mem api.Memory, srcPtr, srcLen, dstPtr, dstCap uint32, flags utf.Flags) (utf.Progress, error) {
	src, n, err := readSource(mem, cv.dir.From, srcPtr, srcLen)
	if err != nil {
		return utf.Progress{}, err
	}
	size := uint64(dstCap) * uint64(cv.dir.To.UnitSize())
	if size > math.MaxUint32 {
		return utf.Progress{}, errors.OutOfBounds(errors.PhaseHost, dstPtr, dstCap)
	}
	dst, ok := mem.Read(dstPtr, uint32(size))
	if !ok {
		return utf.Progress{}, errors.OutOfBounds(errors.PhaseHost, dstPtr, uint32(size))
	}
	return utf.Transcode(dst, cv.dir.To, src, source(cv.dir.From, src), n, flags)
}

func (cv *converter) measure(mem api.Memory, srcPtr, srcLen uint32, flags utf.Flags) (utf.Progress, error) {
	src, n, err := readSource(mem, cv.dir.From, srcPtr, srcLen)
	if err != nil {
		return utf.Progress{}, err
	}
	return utf.TranscodeLength(cv.dir.To, src, source(cv.dir.From, src), n, flags)
}

// finish stores the progress pair and maps err to the status returned to the
// guest. A zero progress pointer skips the store; one outside memory is a
// fault.
func (cv *converter) finish(mem api.Memory, progressPtr uint32, p utf.Progress, err error) uint64 {
	if mem != nil && progressPtr != NoProgress {
		if !mem.WriteUint32Le(progressPtr, uint32(p.Written)) || !mem.WriteUint32Le(progressPtr+4, uint32(p.Consumed)) {
			err = errors.OutOfBounds(errors.PhaseHost, progressPtr, 8)
		}
	}
	st := errors.StatusOf(err)
	cv.cfg.metrics.observe(cv.dir.Name, st, p)
	if err != nil {
		cv.cfg.logger.Debug("guest conversion failed",
			zap.String("direction", cv.dir.Name),
			zap.Stringer("status", st),
			zap.Int("written", p.Written),
			zap.Int("consumed", p.Consumed),
			zap.Error(err),
		)
	}
	return api.EncodeI32(int32(st))
}

// readSource returns the guest bytes a conversion may read and the length to
// hand to the engine.
func readSource(mem api.Memory, from utf.Form, ptr, n uint32) ([]byte, int, error) {
	if mem == nil {
		return nil, 0, errors.NilPointer(errors.PhaseHost, "guest memory")
	}
	if n == NullTerminated {
		size := mem.Size()
		if ptr > size {
			return nil, 0, errors.OutOfBounds(errors.PhaseHost, ptr, 0)
		}
		data, _ := mem.Read(ptr, size-ptr)
		return data, utf.NullTerminated, nil
	}
	size := uint64(n) * uint64(from.UnitSize())
	if size > math.MaxUint32 {
		return nil, 0, errors.OutOfBounds(errors.PhaseHost, ptr, n)
	}
	data, ok := mem.Read(ptr, uint32(size))
	if !ok {
		return nil, 0, errors.OutOfBounds(errors.PhaseHost, ptr, uint32(size))
	}
	return data, int(n), nil
}

func hasBOM(_ context.Context, mod api.Module, stack []uint64) {
	ptr, n, width := api.DecodeU32(stack[0]), api.DecodeU32(stack[1]), api.DecodeU32(stack[2])
	var found bool
	if mem := mod.Memory(); mem != nil {
		if data, ok := mem.Read(ptr, n); ok {
			switch width {
			case 1:
				found = utf.HasUTF8BOM(data)
			case 2:
				found = utf.HasUTF16BOM(data)
			case 4:
				found = utf.HasUTF32BOM(data)
			}
		}
	}
	if found {
		stack[0] = 1
	} else {
		stack[0] = 0
	}
}
