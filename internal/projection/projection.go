// Package projection maps world positions onto a fitted map image.
package projection

import (
	"github.com/osse101/lootmap/internal/domain"
)

// ObjectFit returns the largest size with natural's aspect ratio that fits
// inside container. ok is false until both sizes are measured.
func ObjectFit(container, natural domain.Dimensions) (domain.Dimensions, bool) {
	containerAspect, ok := container.AspectRatio()
	if !ok {
		return domain.Dimensions{}, false
	}
	naturalAspect, ok := natural.AspectRatio()
	if !ok {
		return domain.Dimensions{}, false
	}

	if containerAspect > naturalAspect {
		return domain.Dimensions{Width: container.Height * naturalAspect, Height: container.Height}, true
	}
	return domain.Dimensions{Width: container.Width, Height: container.Width / naturalAspect}, true
}

// Projector converts world points into render space for one map image.
// The image's natural size is the size of the world bounds.
type Projector struct {
	center  domain.Point
	natural domain.Dimensions
	render  domain.Dimensions
}

// NewProjector returns a projector for bounds drawn at render size. ok is
// false when either size is not measured.
func NewProjector(bounds domain.Bounds, render domain.Dimensions) (Projector, bool) {
	natural := bounds.Size()
	if !natural.Measured() || !render.Measured() {
		return Projector{}, false
	}
	return Projector{center: bounds.Center(), natural: natural, render: render}, true
}

// Natural returns the unscaled image size.
func (p Projector) Natural() domain.Dimensions { return p.natural }

// Render returns the target size.
func (p Projector) Render() domain.Dimensions { return p.render }

// Project maps a world point to render space. The image is centred on the
// bounds midpoint and mirrored on the x axis.
func (p Projector) Project(world domain.Point) domain.Point {
	aligned := world.Sub(p.center)
	image := domain.Point{
		X: p.natural.Width - (aligned.X + p.natural.Width/2),
		Y: aligned.Y + p.natural.Height/2,
	}
	return domain.Point{
		X: image.X / p.natural.Width * p.render.Width,
		Y: image.Y / p.natural.Height * p.render.Height,
	}
}

// Unproject is the inverse of Project.
func (p Projector) Unproject(screen domain.Point) domain.Point {
	image := domain.Point{
		X: screen.X / p.render.Width * p.natural.Width,
		Y: screen.Y / p.render.Height * p.natural.Height,
	}
	aligned := domain.Point{
		X: p.natural.Width/2 - image.X,
		Y: image.Y - p.natural.Height/2,
	}
	return aligned.Add(p.center)
}
