package lighting

// Material holds Phong reflection coefficients.
type Material struct {
	Ambient   [3]float32 // ka
	Diffuse   [3]float32 // kd
	Specular  [3]float32 // ks
	Shininess float32    // ns
}

// DefaultMaterial returns ka 0.03, kd 1, ks 1, ns 10.
func DefaultMaterial() Material {
	return Material{
		Ambient:   [3]float32{0.03, 0.03, 0.03},
		Diffuse:   [3]float32{1, 1, 1},
		Specular:  [3]float32{1, 1, 1},
		Shininess: 10,
	}
}

// ClampShininess keeps the specular exponent in a range the shader handles.
func (m *Material) ClampShininess() {
	if m.Shininess < 1 {
		m.Shininess = 1
	}
	if m.Shininess > 256 {
		m.Shininess = 256
	}
}
