package entity

// Frame is a decoded BGR pixel buffer. Pix holds 3 bytes per pixel in
// B, G, R order; Stride is the byte distance between rows, so a region
// can be a view into a larger frame without copying.
type Frame struct {
	Width  int
	Height int
	Stride int
	Pix    []uint8
}

// NewFrame allocates a zeroed frame.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Stride: width * 3,
		Pix:    make([]uint8, width*height*3),
	}
}

// Area returns the pixel count of the frame.
func (f *Frame) Area() int {
	if f == nil || f.Width <= 0 || f.Height <= 0 {
		return 0
	}
	return f.Width * f.Height
}

// At returns the B, G, R components of the pixel at (x, y).
func (f *Frame) At(x, y int) (b, g, r uint8) {
	i := y*f.Stride + x*3
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// SetBGR writes the pixel at (x, y).
func (f *Frame) SetBGR(x, y int, b, g, r uint8) {
	i := y*f.Stride + x*3
	f.Pix[i], f.Pix[i+1], f.Pix[i+2] = b, g, r
}

// Region returns a view of the frame clipped to box. The view shares
// the backing pixel slice. A box outside the frame yields an empty
// frame.
func (f *Frame) Region(box BoundingBox) *Frame {
	x, y := box.X, box.Y
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	w := box.X + box.Width - x
	h := box.Y + box.Height - y
	if x+w > f.Width {
		w = f.Width - x
	}
	if y+h > f.Height {
		h = f.Height - y
	}
	if w <= 0 || h <= 0 {
		return &Frame{}
	}
	return &Frame{
		Width:  w,
		Height: h,
		Stride: f.Stride,
		Pix:    f.Pix[y*f.Stride+x*3:],
	}
}

// Fill paints the whole frame with one BGR color.
func (f *Frame) Fill(b, g, r uint8) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			f.SetBGR(x, y, b, g, r)
		}
	}
}
