package raster

// FillLine writes px to n consecutive pixels. If rgbOnly is set the alpha
// byte of each destination pixel is left alone.
func FillLine(b []byte, px Pixel, n int, rgbOnly bool) {
	for i := 0; n > 0; n, i = n-1, i+BytesPerPixel {
		b[i+0] = px[0]
		b[i+1] = px[1]
		b[i+2] = px[2]
		if !rgbOnly {
			b[i+3] = px[3]
		}
	}
}

// FillAlphaLine overwrites only the alpha byte of n consecutive pixels.
func FillAlphaLine(b []byte, alpha byte, n int) {
	for i := 3; n > 0; n, i = n-1, i+BytesPerPixel {
		b[i] = alpha
	}
}

// FillRect applies FillLine to dupY rows of dupX pixels, each row starting
// width pixels after the previous one.
func FillRect(b []byte, px Pixel, width, dupX, dupY int, rgbOnly bool) {
	for y := 0; y < dupY; y++ {
		FillLine(b[y*width*BytesPerPixel:], px, dupX, rgbOnly)
	}
}

// FillAlphaRect applies FillAlphaLine to dupY rows of dupX pixels, each row
// starting width pixels after the previous one.
func FillAlphaRect(b []byte, alpha byte, width, dupX, dupY int) {
	for y := 0; y < dupY; y++ {
		FillAlphaLine(b[y*width*BytesPerPixel:], alpha, dupX)
	}
}
