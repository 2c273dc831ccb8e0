package colormap

import "image/color"

func rgb(r, g, b uint8) color.Color { return color.RGBA{R: r, G: g, B: b, A: 0xff} }

var viridis = []color.Color{
	rgb(68, 1, 84),
	rgb(72, 35, 116),
	rgb(64, 67, 135),
	rgb(52, 94, 141),
	rgb(41, 120, 142),
	rgb(32, 144, 140),
	rgb(34, 167, 132),
	rgb(68, 190, 112),
	rgb(121, 209, 81),
	rgb(189, 222, 38),
	rgb(253, 231, 37),
}

var plasma = []color.Color{
	rgb(13, 8, 135),
	rgb(75, 3, 161),
	rgb(125, 3, 168),
	rgb(168, 34, 150),
	rgb(203, 70, 121),
	rgb(229, 107, 93),
	rgb(248, 148, 65),
	rgb(253, 195, 40),
	rgb(240, 249, 33),
}

var inferno = []color.Color{
	rgb(0, 0, 4),
	rgb(40, 11, 84),
	rgb(101, 21, 110),
	rgb(159, 42, 99),
	rgb(212, 72, 66),
	rgb(245, 125, 21),
	rgb(250, 193, 39),
	rgb(252, 255, 164),
}

var magma = []color.Color{
	rgb(0, 0, 4),
	rgb(28, 16, 68),
	rgb(79, 18, 123),
	rgb(129, 37, 129),
	rgb(181, 54, 122),
	rgb(229, 80, 100),
	rgb(251, 135, 97),
	rgb(254, 194, 135),
	rgb(252, 253, 191),
}

var (
	jet = []color.Color{
		rgb(0, 0, 128),
		rgb(0, 0, 255),
		rgb(0, 255, 255),
		rgb(255, 255, 0),
		rgb(255, 0, 0),
		rgb(128, 0, 0),
	}
	jetStops = []float64{0, 0.11, 0.375, 0.64, 0.89, 1}
)

var (
	hot = []color.Color{
		rgb(10, 0, 0),
		rgb(255, 0, 0),
		rgb(255, 255, 0),
		rgb(255, 255, 255),
	}
	hotStops = []float64{0, 0.365, 0.746, 1}
)
