// Renders a scene of rounded labels into a png image.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/roundui/roundui/core"
)

func main() {
	log.SetFlags(log.Llongfile)
	if err := main2(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func main2(args []string) error {
	fs := flag.NewFlagSet("roundui", flag.ContinueOnError)
	sceneFlag := fs.String("scene", "", "scene file (.toml, .yaml)")
	outFlag := fs.String("out", "out.png", "output png file")
	backendFlag := fs.String("backend", core.ImageBackend, "drawing backend: image, gg")
	framesFlag := fs.Int("frames", 1, "number of frames to run")
	verboseFlag := fs.Bool("v", false, "verbose")
	pointer := &pointerOpt{}
	fs.Var(pointer, "pointer", "pointer position x,y (overrides the scene)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *sceneFlag == "" {
		return fmt.Errorf("missing -scene")
	}

	if *verboseFlag {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		gg.SetLogger(slog.New(h))
	}

	s, err := core.LoadScene(*sceneFlag)
	if err != nil {
		return err
	}
	if pointer.p != nil {
		s.Pointer = pointer.p
	}
	r, err := core.NewRenderer(s)
	if err != nil {
		return err
	}
	img, err := r.RenderImage(*backendFlag, *framesFlag)
	if err != nil {
		return err
	}
	if err := core.WritePNG(*outFlag, img); err != nil {
		return err
	}
	if *verboseFlag {
		log.Printf("%v: %v labels, %v", *outFlag, len(r.Labels), img.Bounds())
	}
	return nil
}

//----------

// implements flag.Value interface
type pointerOpt struct {
	p *core.Point
}

func (o *pointerOpt) Set(s string) error {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("expecting x,y: %q", s)
	}
	xi, err := strconv.Atoi(strings.TrimSpace(x))
	if err != nil {
		return err
	}
	yi, err := strconv.Atoi(strings.TrimSpace(y))
	if err != nil {
		return err
	}
	o.p = &core.Point{X: xi, Y: yi}
	return nil
}

func (o *pointerOpt) String() string {
	if o.p == nil {
		return ""
	}
	return fmt.Sprintf("%v,%v", o.p.X, o.p.Y)
}
