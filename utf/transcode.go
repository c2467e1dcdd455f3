package utf

// sink receives decoded code points. A measuring sink only counts; a filling
// sink writes into dst and reports when the next code point does not fit.
type sink[D unit] struct {
	enc     encoder[D]
	dst     []D
	n       int // elements produced
	measure bool
}

func (s *sink[D]) put(r rune) bool {
	if s.measure {
		s.n += s.enc.size(r)
		return true
	}
	w := s.enc.encode(s.dst[s.n:], r)
	if w == 0 {
		return false
	}
	s.n += w
	return true
}

// terminate writes the zero unit after the output.
func (s *sink[D]) terminate() bool {
	if s.measure {
		return true
	}
	if len(s.dst)-s.n < s.enc.width {
		return false
	}
	clear(s.dst[s.n : s.n+s.enc.width])
	return true
}

// flush moves the produced units into target order. The terminator is zero
// in every order and needs no swap.
func (s *sink[D]) flush() {
	if s.measure || s.enc.swap == nil {
		return
	}
	s.enc.swap(s.dst[:s.n])
}

func (s *sink[D]) progress(consumed, srcWidth int) Progress {
	return Progress{Written: s.n / s.enc.width, Consumed: consumed / srcWidth}
}

func isZero[S unit](p []S) bool {
	for _, u := range p {
		if u != 0 {
			return false
		}
	}
	return true
}

// bound returns the part of src the conversion may read. srcLen counts code
// units of width elements each.
func bound[S unit](src []S, srcLen, width int) ([]S, error) {
	if src == nil {
		return nil, ErrInvalidArguments
	}
	if srcLen == NullTerminated {
		end := len(src) - len(src)%width
		for i := 0; i < end; i += width {
			if isZero(src[i : i+width]) {
				return src[:i], nil
			}
		}
		if end != len(src) {
			// trailing partial unit with no terminator before it
			return nil, ErrInvalidArguments
		}
		return src, nil
	}
	if srcLen < 0 || srcLen > len(src)/width {
		return nil, ErrInvalidArguments
	}
	return src[:srcLen*width], nil
}

// run is the conversion loop shared by every direction.
func run[S, D unit](s *sink[D], src []S, srcLen int, flags Flags, dec decoder[S]) (Progress, error) {
	in, err := bound(src, srcLen, dec.width)
	if err != nil {
		return Progress{}, err
	}
	if len(in) == 0 || isZero(in[:dec.width]) {
		s.terminate()
		return Progress{}, nil
	}

	consumed := 0
	if n := dec.bom(in); n > 0 {
		if flags&ForbidBOM != 0 {
			return Progress{}, ErrInvalidBOM
		}
		in = in[n:]
		consumed = n
	}

	for len(in) > 0 {
		r, size, st := dec.decode(in)
		switch st {
		case decodeShort:
			return s.progress(consumed, dec.width), ErrInvalidArguments
		case decodeInvalid:
			if flags&ErrorOnInvalid != 0 {
				return s.progress(consumed, dec.width), ErrInvalidCodePoint
			}
			r = RuneError
		}
		if !s.put(r) {
			return s.progress(consumed, dec.width), ErrOutOfMemory
		}
		in = in[size:]
		consumed += size
	}

	if !s.terminate() {
		return s.progress(consumed, dec.width), ErrOutOfMemory
	}
	return s.progress(consumed, dec.width), nil
}

// runSniffed lets a leading BOM choose the source decoder. Without a BOM the
// fallback decoder reads the whole input. A consumed BOM is never honoured a
// second time.
func runSniffed[S, D unit](s *sink[D], src []S, srcLen int, flags Flags, pick func([]S) (decoder[S], bool), fallback decoder[S]) (Progress, error) {
	w := fallback.width
	in, err := bound(src, srcLen, w)
	if err != nil || len(in) == 0 || isZero(in[:w]) {
		return run(s, src, srcLen, flags, fallback)
	}
	dec, ok := pick(in[:w])
	if !ok {
		return run(s, in, len(in)/w, flags, fallback)
	}
	if flags&ForbidBOM != 0 {
		return Progress{}, ErrInvalidBOM
	}
	rest := in[w:]
	p, err := run(s, rest, len(rest)/w, flags|ForbidBOM, dec)
	p.Consumed++
	return p, err
}

func convert[S, D unit](dst []D, src []S, srcLen int, flags Flags, dec decoder[S], enc encoder[D]) (Progress, error) {
	s := sink[D]{enc: enc, dst: dst}
	p, err := run(&s, src, srcLen, flags, dec)
	s.flush()
	return p, err
}

func measure[S, D unit](src []S, srcLen int, flags Flags, dec decoder[S], enc encoder[D]) (Progress, error) {
	s := sink[D]{enc: enc, measure: true}
	return run(&s, src, srcLen, flags, dec)
}

func convertSniffed[S, D unit](dst []D, src []S, srcLen int, flags Flags, pick func([]S) (decoder[S], bool), fallback decoder[S], enc encoder[D]) (Progress, error) {
	s := sink[D]{enc: enc, dst: dst}
	p, err := runSniffed(&s, src, srcLen, flags, pick, fallback)
	s.flush()
	return p, err
}

func measureSniffed[S, D unit](src []S, srcLen int, flags Flags, pick func([]S) (decoder[S], bool), fallback decoder[S], enc encoder[D]) (Progress, error) {
	s := sink[D]{enc: enc, measure: true}
	return runSniffed(&s, src, srcLen, flags, pick, fallback)
}
