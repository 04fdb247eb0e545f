package glimpse

import "testing"

func TestWindowOptionsDefaults(t *testing.T) {
	opts := WindowOptions{}.WithDefaults()

	if opts.Width != 800 || opts.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", opts.Width, opts.Height)
	}

	if opts.Title != "WebGPU" {
		t.Errorf("expected default title, got %q", opts.Title)
	}

	if opts.Resizable {
		t.Error("window must not be resizable by default")
	}
}

func TestWindowOptionsKeepExplicitValues(t *testing.T) {
	opts := WindowOptions{Width: 1024, Height: -1, Title: "Demo", Resizable: true}.WithDefaults()

	if opts.Width != 1024 {
		t.Errorf("width overwritten: %d", opts.Width)
	}

	if opts.Height != 600 {
		t.Errorf("negative height should fall back to default, got %d", opts.Height)
	}

	if opts.Title != "Demo" || !opts.Resizable {
		t.Errorf("explicit values lost: %+v", opts)
	}
}

func TestGlfwBool(t *testing.T) {
	if glfwBool(true) == glfwBool(false) {
		t.Fatal("glfw booleans must differ")
	}
}
