package domain

import (
	"errors"
	"fmt"

	"github.com/mouse-blink/scalist/internal/adapter"
	"github.com/mouse-blink/scalist/internal/controller"
	m "github.com/mouse-blink/scalist/internal/model"
	"golang.org/x/sync/errgroup"
)

// ScaleArgs describes one scale invocation across one or more scene files.
type ScaleArgs struct {
	Paths   []m.Path
	Request m.ScaleRequest
	DryRun  bool
	Threads int
}

// Workflow defines the interface for keyframe scaling operations.
type Workflow interface {
	Scale(args ScaleArgs) error
	// ScaleScene runs one operation against an already open host document
	// without saving; the interactive panel drives this.
	ScaleScene(host adapter.Host, req m.ScaleRequest) (controller.ScaleResult, error)
	List(paths ...m.Path) error
}

type workflow struct {
	store  adapter.SceneStore
	engine Engine
	ui     controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided store and UI.
func NewWorkflow(store adapter.SceneStore, ui controller.UI) Workflow {
	return &workflow{
		store:  store,
		engine: NewEngine(),
		ui:     ui,
	}
}

// Scale runs one scaling operation per scene file. Files are independent of
// each other and are processed through a bounded group; each individual
// operation is synchronous and runs to completion on its own document.
func (w *workflow) Scale(args ScaleArgs) error {
	if len(args.Paths) == 0 {
		return fmt.Errorf("no scene files given")
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	results := make([]controller.ScaleResult, len(args.Paths))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, path := range args.Paths {
		g.Go(func() error {
			res, err := w.scaleScene(path, args)
			if err != nil {
				return fmt.Errorf("failed to scale %s: %w", path, err)
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		if res.Rejected {
			w.ui.DisplayWarning(fmt.Sprintf("%s: select at least 2 keyframes", res.Path))
		}
	}

	if args.DryRun {
		return w.ui.DisplayCommits(results)
	}

	return w.ui.DisplayResults(results)
}

// ScaleScene runs one operation against a single loaded scene and returns the
// outcome without saving. The interactive panel drives this directly.
func (w *workflow) ScaleScene(host adapter.Host, req m.ScaleRequest) (controller.ScaleResult, error) {
	sel, err := host.ReadSelection()
	if err != nil {
		return controller.ScaleResult{}, err
	}

	if err := ValidateSelection(sel, req.Strategy); err != nil {
		if errors.Is(err, ErrInsufficientSelection) {
			return controller.ScaleResult{Request: req, Rejected: true}, nil
		}

		return controller.ScaleResult{}, err
	}

	commits, err := w.engine.ApplyScale(sel, req)
	if err != nil {
		return controller.ScaleResult{}, err
	}

	res := controller.ScaleResult{
		Request: req,
		Commits: commits,
		Curves:  len(sel.Curves),
	}

	if err := writeCommits(host, commits); err != nil {
		return controller.ScaleResult{}, err
	}

	return res, nil
}

// scaleScene loads one scene file, runs the operation and writes the file
// back. A dry run computes the commit set and leaves the file untouched.
func (w *workflow) scaleScene(path m.Path, args ScaleArgs) (controller.ScaleResult, error) {
	scene, err := w.store.Load(path)
	if err != nil {
		return controller.ScaleResult{}, err
	}

	host := adapter.NewSceneHost(scene)

	sel, err := host.ReadSelection()
	if err != nil {
		return controller.ScaleResult{}, err
	}

	if err := ValidateSelection(sel, args.Request.Strategy); err != nil {
		if errors.Is(err, ErrInsufficientSelection) {
			return controller.ScaleResult{Path: path, Request: args.Request, Rejected: true}, nil
		}

		return controller.ScaleResult{}, err
	}

	commits, err := w.engine.ApplyScale(sel, args.Request)
	if err != nil {
		return controller.ScaleResult{}, err
	}

	res := controller.ScaleResult{
		Path:    path,
		Request: args.Request,
		Commits: commits,
		Curves:  len(sel.Curves),
	}

	if args.DryRun {
		return res, nil
	}

	if err := writeCommits(host, commits); err != nil {
		return controller.ScaleResult{}, err
	}

	if err := w.store.Save(path, host.Scene()); err != nil {
		return controller.ScaleResult{}, err
	}

	return res, nil
}

// writeCommits performs the one batched write of an operation, snapping to
// whole frames after time-axis writes.
func writeCommits(host adapter.Host, commits m.CommitSet) error {
	switch commits.Axis {
	case m.AxisValue:
		return host.WriteScaledValues(commits)
	case m.AxisTime:
		if err := host.WriteScaledTimes(commits); err != nil {
			return err
		}

		return host.SnapToIntegerFrames(commits)
	}

	return fmt.Errorf("unknown commit axis %d", int(commits.Axis))
}

// List shows the curves and selection of each scene file.
func (w *workflow) List(paths ...m.Path) error {
	infos := make([]controller.SceneInfo, 0, len(paths))

	for _, path := range paths {
		scene, err := w.store.Load(path)
		if err != nil {
			return err
		}

		infos = append(infos, sceneInfo(path, scene))
	}

	return w.ui.DisplayScenes(infos)
}

func sceneInfo(path m.Path, scene *m.Scene) controller.SceneInfo {
	info := controller.SceneInfo{Path: path, CurrentTime: scene.CurrentTime}

	for _, curve := range scene.Curves {
		ci := controller.CurveInfo{Name: curve.Name, Keys: len(curve.Keys)}

		if len(curve.Keys) > 0 {
			ci.First = curve.Keys[0].Time
			ci.Last = curve.Keys[len(curve.Keys)-1].Time
		}

		for _, key := range curve.Keys {
			if key.Selected {
				ci.Selected++
			}
		}

		info.Curves = append(info.Curves, ci)
	}

	return info
}
