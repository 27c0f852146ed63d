// Package blit implements the pixel-level composition used when text
// bitmaps are placed into texture buffers. All buffers are canonical RGBA:
// 4 bytes per pixel (R, G, B, A), straight alpha, tightly packed rows.
package blit

// Fill sets every pixel of dst to the given RGBA value.
func Fill(dst []byte, px [4]byte) {
	for i := 0; i+3 < len(dst); i += 4 {
		dst[i+0] = px[0]
		dst[i+1] = px[1]
		dst[i+2] = px[2]
		dst[i+3] = px[3]
	}
}

// Copy overwrites the top-left of dst with src, clipped to dst bounds.
// No blending is performed. It returns the width and height of the region
// actually written.
func Copy(dst []byte, dstW, dstH int, src []byte, srcW, srcH int) (w, h int) {
	w, h = clip(dstW, dstH, srcW, srcH)
	for y := 0; y < h; y++ {
		copy(dst[y*dstW*4:][:w*4], src[y*srcW*4:][:w*4])
	}
	return w, h
}

// Over composites src over the top-left of dst using straight-alpha
// source-over, clipped to dst bounds. It returns the width and height of
// the region actually touched.
//
// Straight-alpha source-over:
//
//	outA = srcA + dstA*(1-srcA)
//	outC = (srcC*srcA + dstC*dstA*(1-srcA)) / outA
func Over(dst []byte, dstW, dstH int, src []byte, srcW, srcH int) (w, h int) {
	w, h = clip(dstW, dstH, srcW, srcH)
	for y := 0; y < h; y++ {
		d := dst[y*dstW*4:]
		s := src[y*srcW*4:]
		for x := 0; x < w; x++ {
			o := x * 4
			sa := s[o+3]
			switch sa {
			case 0:
				continue
			case 255:
				d[o+0] = s[o+0]
				d[o+1] = s[o+1]
				d[o+2] = s[o+2]
				d[o+3] = 255
			default:
				da := d[o+3]
				inv := 255 - sa
				// Weights of source and destination color in the result.
				ws := uint32(sa) * 255
				wd := uint32(da) * uint32(inv)
				outA := ws + wd
				d[o+0] = blendChannel(s[o+0], d[o+0], ws, wd, outA)
				d[o+1] = blendChannel(s[o+1], d[o+1], ws, wd, outA)
				d[o+2] = blendChannel(s[o+2], d[o+2], ws, wd, outA)
				d[o+3] = byte((outA + 127) / 255)
			}
		}
	}
	return w, h
}

// blendChannel combines one straight-alpha color channel.
func blendChannel(sc, dc byte, ws, wd, outA uint32) byte {
	if outA == 0 {
		return 0
	}
	return byte((uint32(sc)*ws + uint32(dc)*wd + outA/2) / outA)
}

// clip bounds a src-sized region to dst dimensions.
func clip(dstW, dstH, srcW, srcH int) (w, h int) {
	w, h = srcW, srcH
	if w > dstW {
		w = dstW
	}
	if h > dstH {
		h = dstH
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}
