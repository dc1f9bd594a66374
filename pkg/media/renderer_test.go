package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderArgs(t *testing.T) {
	args := renderArgs("in.mp4", 48000, 2, DefaultProfile(), "out.mp4")
	got := strings.Join(args, " ")

	for _, want := range []string{
		"-i in.mp4",
		"-f s16le -ar 48000 -ac 2 -i pipe:0",
		"-map 0:v -map 1:a",
		"-c:v copy",
		"-c:a aac -b:a 256k -ar 48000 -ac 2",
		"-shortest",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("args missing %q:\n%s", want, got)
		}
	}
	if args[len(args)-1] != "out.mp4" {
		t.Errorf("output %q must come last", args[len(args)-1])
	}
}

func TestAudioOnlyArgs(t *testing.T) {
	args := audioOnlyArgs(48000, 2, DefaultProfile(), "out.m4a")
	got := strings.Join(args, " ")

	if strings.Contains(got, "-map") || strings.Contains(got, "-c:v") {
		t.Errorf("audio-only args reference a video stream:\n%s", got)
	}
	if !strings.Contains(got, "-c:a aac -b:a 256k") {
		t.Errorf("args missing audio encode settings:\n%s", got)
	}
}

func TestTmpPathKeepsExtension(t *testing.T) {
	if got := tmpPath("/tmp/final.mp4"); got != "/tmp/final.tmp.mp4" {
		t.Errorf("tmpPath = %q", got)
	}
}

func TestCheckContainer(t *testing.T) {
	for _, ok := range []string{"a.mp4", "b.M4A", "c.mov", "d.mkv"} {
		if err := CheckContainer(ok); err != nil {
			t.Errorf("%s rejected: %v", ok, err)
		}
	}
	for _, bad := range []string{"a.avi", "b.wav", "c"} {
		if err := CheckContainer(bad); err == nil {
			t.Errorf("%s accepted", bad)
		}
	}
}

func TestPassthroughCopiesBitForBit(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "visual.mp4")
	dst := filepath.Join(dir, "out.mp4")

	payload := []byte("not really a video, but every byte counts")
	if err := os.WriteFile(src, payload, 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRenderer(DefaultProfile())
	if err := r.Passthrough(context.Background(), src, dst); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(payload) {
		t.Error("copy differs from source")
	}

	// The temporary sibling must be gone.
	if _, err := os.Stat(tmpPath(dst)); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
}

func TestPassthroughMissingSource(t *testing.T) {
	r := NewRenderer(DefaultProfile())
	err := r.Passthrough(context.Background(), "/does/not/exist.mp4", filepath.Join(t.TempDir(), "out.mp4"))
	if err == nil {
		t.Fatal("expected an error")
	}
}
