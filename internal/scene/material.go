package scene

import "github.com/lucasb-eyer/go-colorful"

// Hex converts a 0xRRGGBB value into a colour.
func Hex(v uint32) colorful.Color {
	return colorful.Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}
}

// Material describes a surface with the metal-rough model.
type Material struct {
	Color     colorful.Color
	Roughness float64
	Metalness float64
}

// StandardMaterial returns a fully rough, non-metallic material.
func StandardMaterial(c colorful.Color) Material {
	return Material{Color: c, Roughness: 1}
}
