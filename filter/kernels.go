package filter

// Named kernels for Sharpen, Sobel, and Emboss (spec §4.3.4, §4.3.6,
// §4.3.7). Sobel reads the two Sobel tables; Sharpen and Emboss build
// their own kernels from a strength, and SharpenKernel/EmbossKernel
// equal those kernels at strength 1. Exported so callers building
// custom pipelines can feed them straight into Convolve.

var SharpenKernel = Kernel2D{
	Size: 3,
	Data: []float64{
		0, -1, 0,
		-1, 5, -1,
		0, -1, 0,
	},
}

var SobelHorizontalKernel = Kernel2D{
	Size: 3,
	Data: []float64{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	},
}

var SobelVerticalKernel = Kernel2D{
	Size: 3,
	Data: []float64{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	},
}

// EmbossKernel is the strength-1 emboss table, kept as a named
// constant for callers building custom Convolve pipelines directly.
var EmbossKernel = Kernel2D{
	Size: 3,
	Data: []float64{
		-2, -1, 0,
		-1, 1, 1,
		0, 1, 2,
	},
	Offset: 128,
}
