package host

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/textconv/canon"
	"github.com/wippyai/textconv/errors"
	"github.com/wippyai/textconv/utf"
)

// memoryModule is (module (memory (export "memory") 1)).
var memoryModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	0x05, 0x03, 0x01, 0x00, 0x01,
	0x07, 0x0a, 0x01, 0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
}

const (
	srcAt      = 64
	dstAt      = 1024
	progressAt = 16
	pageSize   = 65536
)

type guest struct {
	t   *testing.T
	ctx context.Context
	rt  wazero.Runtime
	mod api.Module
	cfg *config
}

func newGuest(t *testing.T, opts ...Option) *guest {
	t.Helper()
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	t.Cleanup(func() { rt.Close(ctx) })

	mod, err := rt.InstantiateWithConfig(ctx, memoryModule, wazero.NewModuleConfig().WithName("guest"))
	require.NoError(t, err)
	return &guest{t: t, ctx: ctx, rt: rt, mod: mod, cfg: newConfig(opts)}
}

func (g *guest) write(ptr uint32, data []byte) {
	g.t.Helper()
	require.True(g.t, g.mod.Memory().Write(ptr, data))
}

func (g *guest) read(ptr, n uint32) []byte {
	g.t.Helper()
	data, ok := g.mod.Memory().Read(ptr, n)
	require.True(g.t, ok)
	return append([]byte(nil), data...)
}

func (g *guest) progress() utf.Progress {
	b := g.read(progressAt, 8)
	return utf.Progress{
		Written:  int(binary.LittleEndian.Uint32(b)),
		Consumed: int(binary.LittleEndian.Uint32(b[4:])),
	}
}

func (g *guest) call(name string, args ...uint32) errors.Status {
	g.t.Helper()
	for _, f := range g.cfg.funcs() {
		if f.name != name {
			continue
		}
		require.Len(g.t, args, len(f.params))
		stack := make([]uint64, len(args))
		for i, a := range args {
			stack[i] = api.EncodeU32(a)
		}
		f.fn(g.ctx, g.mod, stack)
		return errors.Status(api.DecodeI32(stack[0]))
	}
	g.t.Fatalf("no host function %q", name)
	return 0
}

func TestInstantiateExportsEveryDirection(t *testing.T) {
	g := newGuest(t)
	mod, err := Instantiate(g.ctx, g.rt)
	require.NoError(t, err)
	assert.Equal(t, DefaultModuleName, mod.Name())

	defs := mod.ExportedFunctionDefinitions()
	assert.Len(t, defs, 2*len(Directions())+1)
	for _, d := range Directions() {
		require.Contains(t, defs, d.Name)
		require.Contains(t, defs, d.Name+"_length")
		assert.Equal(t, convertNames, defs[d.Name].ParamNames())
		assert.Len(t, defs[d.Name+"_length"].ParamTypes(), 4)
	}
	require.Contains(t, defs, "has_bom")

	_, err = Instantiate(g.ctx, g.rt)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseHost, Kind: errors.KindUnsupported}, "module name already taken")

	named, err := Instantiate(g.ctx, g.rt, WithModuleName("textconv2"))
	require.NoError(t, err)
	assert.Equal(t, "textconv2", named.Name())
}

func TestConvert(t *testing.T) {
	g := newGuest(t)
	src := []byte("héllo")
	g.write(srcAt, src)

	st := g.call("utf8_to_utf16le", srcAt, uint32(len(src)), dstAt, 16, progressAt, 0)
	require.Equal(t, errors.StatusOK, st)
	assert.Equal(t, utf.Progress{Written: 5, Consumed: 6}, g.progress())
	assert.Equal(t, []byte{'h', 0, 0xE9, 0, 'l', 0, 'l', 0, 'o', 0, 0, 0}, g.read(dstAt, 12))

	st = g.call("utf8_to_utf32be", srcAt, uint32(len(src)), dstAt, 16, progressAt, 0)
	require.Equal(t, errors.StatusOK, st)
	assert.Equal(t, []byte{0, 0, 0, 'h', 0, 0, 0, 0xE9}, g.read(dstAt, 8))
}

func TestNullTerminatedSource(t *testing.T) {
	g := newGuest(t)
	g.write(srcAt, []byte{'a', 0, 'b', 0, 0, 0, 'c', 0})

	st := g.call("utf16le_to_utf8", srcAt, NullTerminated, dstAt, 8, progressAt, 0)
	require.Equal(t, errors.StatusOK, st)
	assert.Equal(t, utf.Progress{Written: 2, Consumed: 2}, g.progress())
	assert.Equal(t, []byte("ab\x00"), g.read(dstAt, 3))
}

func TestLengthQuery(t *testing.T) {
	g := newGuest(t)
	g.write(srcAt, []byte{0, 0, 0x65, 0xE5, 0, 1, 0xF6, 0})

	st := g.call("utf32be_to_utf8_length", srcAt, 2, progressAt, 0)
	require.Equal(t, errors.StatusOK, st)
	assert.Equal(t, utf.Progress{Written: 7, Consumed: 2}, g.progress())

	st = g.call("utf32be_to_utf16be_length", srcAt, 2, progressAt, 0)
	require.Equal(t, errors.StatusOK, st)
	assert.Equal(t, utf.Progress{Written: 3, Consumed: 2}, g.progress())
}

func TestOutOfMemory(t *testing.T) {
	g := newGuest(t)
	g.write(srcAt, []byte("abcdef"))

	st := g.call("utf8_to_utf32", srcAt, 6, dstAt, 2, progressAt, 0)
	assert.Equal(t, errors.StatusOutOfMemory, st)
	assert.Equal(t, utf.Progress{Written: 2, Consumed: 2}, g.progress())
	assert.Equal(t, []byte{'a', 0, 0, 0, 'b', 0, 0, 0}, g.read(dstAt, 8))
}

func TestSniffedSource(t *testing.T) {
	g := newGuest(t)

	g.write(srcAt, []byte{0xFE, 0xFF, 0, 'h', 0, 'i'})
	st := g.call("utf16_to_utf8", srcAt, 3, dstAt, 8, progressAt, 0)
	require.Equal(t, errors.StatusOK, st)
	assert.Equal(t, utf.Progress{Written: 2, Consumed: 3}, g.progress())
	assert.Equal(t, []byte("hi\x00"), g.read(dstAt, 3))

	// Without a BOM guest memory is read little-endian.
	g.write(srcAt, []byte{'o', 0, 'k', 0})
	st = g.call("utf16_to_utf8", srcAt, 2, dstAt, 8, progressAt, 0)
	require.Equal(t, errors.StatusOK, st)
	assert.Equal(t, []byte("ok\x00"), g.read(dstAt, 3))

	g.write(srcAt, []byte{0, 0, 0xFE, 0xFF, 0, 0, 0, 'z'})
	st = g.call("utf32_to_utf16", srcAt, 2, dstAt, 4, progressAt, 0)
	require.Equal(t, errors.StatusOK, st)
	assert.Equal(t, []byte{'z', 0, 0, 0}, g.read(dstAt, 4))
}

func TestStatusCodes(t *testing.T) {
	g := newGuest(t)
	g.write(srcAt, []byte("\xEF\xBB\xBFx\xFF"))

	st := g.call("utf8_to_utf16", srcAt, 5, dstAt, 8, progressAt, uint32(utf.ForbidBOM))
	assert.Equal(t, errors.StatusInvalidBOM, st)
	assert.Equal(t, utf.Progress{}, g.progress())

	st = g.call("utf8_to_utf16", srcAt, 5, dstAt, 8, progressAt, uint32(utf.ErrorOnInvalid))
	assert.Equal(t, errors.StatusInvalidCodePoint, st)
	assert.Equal(t, utf.Progress{Written: 1, Consumed: 4}, g.progress())

	g.write(srcAt, []byte{0xE2, 0x82})
	st = g.call("utf8_to_utf16", srcAt, 2, dstAt, 8, progressAt, 0)
	assert.Equal(t, errors.StatusInvalidArguments, st)
}

func TestNoProgressPointer(t *testing.T) {
	g := newGuest(t)
	sentinel := []byte{0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA}
	g.write(0, sentinel)
	g.write(srcAt, []byte("hi"))

	st := g.call("utf8_to_utf16le", srcAt, 2, dstAt, 8, NoProgress, 0)
	assert.Equal(t, errors.StatusOK, st)
	assert.Equal(t, []byte{'h', 0, 'i', 0}, g.read(dstAt, 4))

	st = g.call("utf8_to_utf16le_length", srcAt, 2, NoProgress, 0)
	assert.Equal(t, errors.StatusOK, st)

	st = g.call("utf8_to_utf16le", srcAt, 2, dstAt, 1, NoProgress, 0)
	assert.Equal(t, errors.StatusOutOfMemory, st)
	assert.Equal(t, sentinel, g.read(0, 8))
}

func TestFaults(t *testing.T) {
	g := newGuest(t)

	st := g.call("utf8_to_utf16", pageSize-2, 10, dstAt, 8, progressAt, 0)
	assert.Equal(t, errors.StatusFault, st, "source past the end of memory")

	st = g.call("utf8_to_utf16", srcAt, 0, pageSize-2, 8, progressAt, 0)
	assert.Equal(t, errors.StatusFault, st, "destination past the end of memory")

	st = g.call("utf8_to_utf16_length", srcAt, 0, pageSize-4, 0)
	assert.Equal(t, errors.StatusFault, st, "progress past the end of memory")

	st = g.call("utf8_to_utf16_length", pageSize+1, NullTerminated, progressAt, 0)
	assert.Equal(t, errors.StatusFault, st)
}

func TestModuleFlags(t *testing.T) {
	g := newGuest(t, WithFlags(utf.ForbidBOM))
	g.write(srcAt, []byte("\xEF\xBB\xBFx"))

	st := g.call("utf8_to_utf32le_length", srcAt, 4, progressAt, 0)
	assert.Equal(t, errors.StatusInvalidBOM, st)
}

func TestHasBOM(t *testing.T) {
	g := newGuest(t)
	g.write(srcAt, []byte{0xFF, 0xFE, 0, 0})

	assert.Equal(t, errors.Status(1), g.call("has_bom", srcAt, 4, 2))
	assert.Equal(t, errors.Status(1), g.call("has_bom", srcAt, 4, 4))
	assert.Equal(t, errors.Status(0), g.call("has_bom", srcAt, 3, 4))
	assert.Equal(t, errors.Status(0), g.call("has_bom", srcAt, 4, 1))
	assert.Equal(t, errors.Status(0), g.call("has_bom", srcAt, 4, 3))
	assert.Equal(t, errors.Status(0), g.call("has_bom", pageSize, 4, 2))
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	g := newGuest(t, WithMetrics(m))
	g.write(srcAt, []byte("abc"))
	g.call("utf8_to_utf16le", srcAt, 3, dstAt, 8, progressAt, 0)
	g.call("utf8_to_utf16le", srcAt, 3, dstAt, 1, progressAt, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversions.WithLabelValues("utf8_to_utf16le", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversions.WithLabelValues("utf8_to_utf16le", "out_of_memory")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.units.WithLabelValues("utf8_to_utf16le", "consumed")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.units.WithLabelValues("utf8_to_utf16le", "written")))

	_, err = NewMetrics(reg)
	assert.Error(t, err, "collectors are already registered")
}

func TestFailuresAreLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := newGuest(t, WithLogger(zap.New(core)))
	g.write(srcAt, []byte("\xFF"))

	g.call("utf8_to_utf16", srcAt, 1, dstAt, 4, progressAt, uint32(utf.ErrorOnInvalid))
	entries := logs.FilterMessage("guest conversion failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "utf8_to_utf16", fields["direction"])
	assert.Equal(t, "invalid_code_point", fields["status"])
}

func TestCanonOverGuestMemory(t *testing.T) {
	g := newGuest(t)
	mem := NewMemory(g.mod.Memory())
	assert.Equal(t, uint32(pageSize), mem.Size())

	alloc := &bump{next: 4096}
	opts := canon.Options{Memory: mem, Allocator: alloc, Encoding: canon.StringEncodingUTF16}
	ptr, n, err := canon.LowerString(canon.NewLowerContext(g.ctx, opts), "guest 😀")
	require.NoError(t, err)
	assert.Equal(t, uint32(8), n)

	// The host export reads what canon lowered.
	st := g.call("utf16le_to_utf8", ptr, n, dstAt, 16, progressAt, 0)
	require.Equal(t, errors.StatusOK, st)
	assert.Equal(t, "guest 😀", string(g.read(dstAt, uint32(g.progress().Written))))

	s, err := canon.LiftString(canon.NewLiftContext(g.ctx, opts), ptr, n)
	require.NoError(t, err)
	assert.Equal(t, "guest 😀", s)

	_, err = mem.Read(pageSize, 1)
	assert.ErrorIs(t, err, &errors.Error{Kind: errors.KindOutOfBounds})
	require.NoError(t, mem.WriteU16(8, 0xBEEF))
	v, err := mem.ReadU16(8)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), v)
	require.NoError(t, mem.WriteU32(8, 7))
	w, err := mem.ReadU32(8)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), w)
	assert.Error(t, mem.WriteU8(pageSize, 1))
}

type bump struct{ next uint32 }

func (b *bump) Alloc(size, align uint32) (uint32, error) {
	ptr := (b.next + align - 1) &^ (align - 1)
	b.next = ptr + size
	return ptr, nil
}

func (b *bump) Free(ptr, size, align uint32) {}
