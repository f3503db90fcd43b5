package scenescript

// DefaultScript returns the built-in desk scene: floor, walls, window,
// table, and the plush panda figure, placed with fixed transforms. It
// is used when no script file is supplied.
func DefaultScript() *Script {
	script := &Script{
		Name: "desk",
		Records: []Record{
			// Floor plane under everything.
			{
				Mesh:     MeshPlane,
				Scale:    [3]float32{16.5, 1.0, 10.0},
				Texture:  "rusticwood",
				Material: "wood",
			},
			// Back wall and the wall behind the camera.
			{
				Mesh:     MeshPlane,
				Scale:    [3]float32{70.0, 1.0, 45.0},
				Rotation: [3]float32{90, 0, 0},
				Position: [3]float32{0, 15, -40},
				Color:    &[4]float32{0.6, 0.6, 0.6, 1},
				Material: "wall",
			},
			{
				Mesh:     MeshPlane,
				Scale:    [3]float32{70.0, 1.0, 45.0},
				Rotation: [3]float32{90, 0, 0},
				Position: [3]float32{0, 15, 30},
				Color:    &[4]float32{0.6, 0.6, 0.6, 1},
				Material: "wall",
			},
			// Translucent window pane on the left wall.
			{
				Mesh:     MeshPlane,
				Scale:    [3]float32{32.5, 1.0, 20.0},
				Rotation: [3]float32{90, 90, 0},
				Position: [3]float32{-70, 30, -2.5},
				Color:    &[4]float32{0.75, 0.75, 0.75, 0.4},
				Texture:  "window",
				Material: "window",
				Blend:    true,
			},
			// Table top with a wood texture.
			{
				Mesh:     MeshPlane,
				Scale:    [3]float32{16.5, 1.0, 10.0},
				Position: [3]float32{0, -2, 0},
				Texture:  "wood2",
				Material: "wood",
			},
			{
				Mesh:     MeshBox,
				Scale:    [3]float32{1.0, 2.0, 20.0},
				Position: [3]float32{17, -1, 0},
				Texture:  "wood2",
				Material: "wood",
			},
			{
				Mesh:     MeshBox,
				Scale:    [3]float32{1.0, 2.0, 20.0},
				Position: [3]float32{-17, -1, 0},
				Texture:  "wood2",
				Material: "wood",
			},
			// Plush panda: head dome, face band, zipper collar, body,
			// tapered base, ears.
			{
				Mesh:     MeshHalfSphere,
				Scale:    [3]float32{1.51, 1.13, 1.51},
				Position: [3]float32{9, 7.8, -4},
				Material: "silicone",
			},
			{
				Mesh:     MeshCylinder,
				Scale:    [3]float32{1.5, 1.1, 1.5},
				Rotation: [3]float32{0, 207.5, 0},
				Position: [3]float32{9, 6.8, -4},
				Texture:  "panda",
				Material: "silicone",
				UVScale:  &[2]float32{3, 1},
			},
			{
				Mesh:     MeshSphere,
				Scale:    [3]float32{0.55, 0.3, 0.55},
				Rotation: [3]float32{90, 0, 0},
				Position: [3]float32{7.8, 8.7, -4},
				Color:    &[4]float32{0, 0, 0, 1},
				Material: "silicone",
			},
			{
				Mesh:     MeshSphere,
				Scale:    [3]float32{0.55, 0.3, 0.55},
				Rotation: [3]float32{90, 0, 0},
				Position: [3]float32{10.3, 8.7, -4},
				Color:    &[4]float32{0, 0, 0, 1},
				Material: "silicone",
			},
			{
				Mesh:     MeshCylinder,
				Scale:    [3]float32{1.4, 1.0, 1.4},
				Position: [3]float32{9, 6.4, -4},
				Color:    &[4]float32{0, 0, 0, 1},
				Texture:  "zipper",
				Material: "plastic",
				UVScale:  &[2]float32{3, 3},
			},
			{
				Mesh:     MeshCylinder,
				Scale:    [3]float32{1.5, 5.0, 1.5},
				Position: [3]float32{9, 1.5, -4},
				Material: "silicone",
			},
			{
				Mesh:     MeshTaperedCylinder,
				Scale:    [3]float32{1.5, 0.7, 1.5},
				Rotation: [3]float32{180, 0, 0},
				Position: [3]float32{9, 1.5, -4},
				Material: "silicone",
			},
			{
				Mesh:     MeshTorus,
				Scale:    [3]float32{0.83, 0.83, 0.83},
				Rotation: [3]float32{90, 0, 0},
				Position: [3]float32{9, 0.3, -4},
				Material: "silicone",
			},
			// Rug below the table.
			{
				Mesh:     MeshPlane,
				Scale:    [3]float32{35.0, 1.0, 70.0},
				Rotation: [3]float32{90, 90, 90},
				Position: [3]float32{0, -30, -5},
				Texture:  "rug",
				Material: "rug",
			},
		},
	}

	// Built-in data is trusted; Normalize only fills defaults here.
	if err := Normalize(script); err != nil {
		panic(err)
	}
	return script
}
