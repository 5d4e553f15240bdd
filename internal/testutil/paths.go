package testutil

// Test scene paths relative to the repository root.
// These constants should be used instead of hardcoding paths in test files.
const (
	// TestSceneTwoBoxes holds the two unit boxes A and B separated along x.
	TestSceneTwoBoxes = "testdata/scenes/two_boxes.yaml"

	// TestSceneDiagonal holds three boxes A, B, C along the main diagonal.
	TestSceneDiagonal = "testdata/scenes/diagonal.yaml"

	// TestSceneCity is a larger scene of building-sized boxes on a street grid.
	TestSceneCity = "testdata/scenes/city.json"

	// TestSceneUTF16 is TestSceneTwoBoxes saved as UTF-16LE with a byte order mark.
	TestSceneUTF16 = "testdata/scenes/two_boxes_utf16.yaml"
)
