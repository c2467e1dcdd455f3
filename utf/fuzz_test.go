package utf

import (
	"encoding/binary"
	"testing"
	"unicode/utf16"
	"unicode/utf8"
)

func FuzzUTF8ToUTF16(f *testing.F) {
	for _, s := range roundTripCorpus {
		f.Add([]byte(s))
	}
	f.Add([]byte("\xEF\xBB\xBFbom"))
	f.Add([]byte("\xE2\x82"))
	f.Add([]byte("\xF0\x9F\x98\x80\xC0"))
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, b []byte) {
		if b == nil {
			b = []byte{}
		}
		var want []uint16
		wantErr := error(nil)
		consumed := 0
		in := b
		switch {
		case len(in) == 0 || in[0] == 0:
			in = nil
		case HasUTF8BOM(in):
			in = in[3:]
			consumed = 3
		}
		for len(in) > 0 {
			if !utf8.FullRune(in) {
				wantErr = ErrInvalidArguments
				break
			}
			r, size := utf8.DecodeRune(in)
			want = utf16.AppendRune(want, r)
			in = in[size:]
			consumed += size
		}

		dst := make([]uint16, len(b)+1)
		p, err := UTF8ToUTF16(dst, b, len(b), 0)
		if err != wantErr {
			t.Fatalf("err = %v, want %v", err, wantErr)
		}
		if p.Consumed != consumed || !equal(dst[:p.Written], want) {
			t.Fatalf("got %#04x (%+v), want %#04x consumed %d", dst[:p.Written], p, want, consumed)
		}

		n, err := UTF8ToUTF16Length(b, len(b), 0)
		if err != wantErr || n != p {
			t.Fatalf("length = %+v, %v; convert = %+v", n, err, p)
		}

		// U+FFFE in host order reads as a swapped BOM on the way back.
		if wantErr != nil || !utf8.Valid(b) || consumed != len(b) || len(b) == 0 || HasUTF8BOM(b) || dst[0] == 0xFFFE {
			return
		}
		out := make([]byte, len(b)+1)
		q, err := UTF16ToUTF8(out, dst[:p.Written], p.Written, ErrorOnInvalid)
		if err != nil {
			t.Fatalf("back to UTF-8: %v", err)
		}
		if string(out[:q.Written]) != string(b) {
			t.Fatalf("round trip = %q, want %q", out[:q.Written], b)
		}
	})
}

func FuzzUTF16ToUTF8(f *testing.F) {
	f.Add([]byte{'h', 0, 'i', 0})
	f.Add([]byte{0xFF, 0xFE, 'A', 0})
	f.Add([]byte{0x3D, 0xD8, 0x00, 0xDE})
	f.Add([]byte{0x00, 0xDC, 0x00, 0xD8})
	f.Add([]byte{})
	f.Add([]byte{0x41})
	f.Add([]byte{'A', 0, 0x3D})
	f.Fuzz(func(t *testing.T, b []byte) {
		units := make([]uint16, len(b)/2)
		for i := range units {
			units[i] = binary.LittleEndian.Uint16(b[2*i:])
		}

		var want []rune
		wantErr := error(nil)
		consumed := 0
		in := units
		switch {
		case len(in) == 0 || in[0] == 0:
			in = nil
		case in[0] == BOM:
			in = in[1:]
			consumed = 1
		}
		for len(in) > 0 {
			u := in[0]
			switch {
			case !utf16.IsSurrogate(rune(u)):
				want = append(want, rune(u))
			case u >= 0xDC00:
				want = append(want, RuneError)
			case len(in) == 1:
				wantErr = ErrInvalidArguments
			default:
				if r := utf16.DecodeRune(rune(u), rune(in[1])); r != RuneError {
					want = append(want, r)
					in = in[1:]
					consumed++
				} else {
					want = append(want, RuneError)
				}
			}
			if wantErr != nil {
				break
			}
			in = in[1:]
			consumed++
		}

		src := raw16(true, units...)
		dst := make([]byte, 3*len(units)+1)
		p, err := UTF16LEToUTF8(dst, src, len(src), 0)
		if err != wantErr {
			t.Fatalf("err = %v, want %v", err, wantErr)
		}
		if p.Consumed != consumed || string(dst[:p.Written]) != string(want) {
			t.Fatalf("got %q (%+v), want %q consumed %d", dst[:p.Written], p, string(want), consumed)
		}
	})
}
