package systems

import (
	"math"

	"github.com/automoto/fpscore/components"
	cfg "github.com/automoto/fpscore/config"
	"github.com/automoto/fpscore/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// contactSkin keeps a resolved body this far (in space units) from a wall.
const contactSkin = 1e-6

var kinematicQuery = donburi.NewQuery(filter.Contains(
	components.KinematicBody,
	components.Transform,
	components.Object,
))

// UpdateKinematics is the physics collaborator. It consumes each body's
// requested displacement, shortens the horizontal part against solid
// objects, applies gravity down to the floor and writes the corrected
// position back to the transform.
func UpdateKinematics(w donburi.World) {
	dt := frameDelta(w)
	scale := cfg.Physics.SpaceScale

	kinematicQuery.Each(w, func(e *donburi.Entry) {
		body := components.KinematicBody.Get(e)
		transform := components.Transform.Get(e)
		obj := components.Object.Get(e).Object

		var move mgl64.Vec3
		if body.Translation != nil {
			move = *body.Translation
			body.Translation = nil
		}

		// Horizontal, one axis at a time so a blocked axis still lets the
		// other slide along the wall.
		if dx := resolveAxis(obj, move.X()*scale, true); dx != 0 {
			obj.X += dx
			transform.Position[0] += dx / scale
		}
		if dz := resolveAxis(obj, move.Z()*scale, false); dz != 0 {
			obj.Y += dz
			transform.Position[2] += dz / scale
		}
		if obj.Space != nil {
			obj.Update()
		}

		// Vertical
		body.VerticalSpeed -= cfg.Physics.Gravity * dt
		if body.VerticalSpeed < -cfg.Physics.MaxFallSpeed {
			body.VerticalSpeed = -cfg.Physics.MaxFallSpeed
		}
		y := transform.Position.Y() + move.Y() + body.VerticalSpeed*dt
		floor := cfg.Physics.FloorHeight + body.HalfExtents.Y()
		if y <= floor {
			y = floor
			body.VerticalSpeed = 0
			body.Grounded = true
		} else {
			body.Grounded = false
		}
		transform.Position[1] = y
	})
}

// resolveAxis returns how far obj may travel along one axis of the space
// (X when alongX, otherwise Y) before touching a solid object.
func resolveAxis(obj *resolv.Object, delta float64, alongX bool) float64 {
	if delta == 0 {
		return 0
	}
	if obj.Space == nil {
		return delta
	}

	dx, dy := delta, 0.0
	if !alongX {
		dx, dy = 0, delta
	}
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return delta
	}

	allowed := delta
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		objMin, objMax, solidMin, solidMax := spans(obj, solid, alongX)
		crossObjMin, crossObjMax, crossSolidMin, crossSolidMax := spans(obj, solid, !alongX)
		if crossObjMax <= crossSolidMin || crossSolidMax <= crossObjMin {
			continue // beside the path, only shares a cell
		}

		if delta > 0 {
			gap := solidMin - objMax
			switch {
			case gap >= 0:
				allowed = math.Min(allowed, math.Max(gap-contactSkin, 0))
			case objMin < solidMax:
				allowed = math.Min(allowed, 0)
			}
		} else {
			gap := solidMax - objMin
			switch {
			case gap <= 0:
				allowed = math.Max(allowed, math.Min(gap+contactSkin, 0))
			case objMax > solidMin:
				allowed = math.Max(allowed, 0)
			}
		}
	}
	return allowed
}

// spans returns the extents of a and b along one space axis.
func spans(a, b *resolv.Object, alongX bool) (aMin, aMax, bMin, bMax float64) {
	if alongX {
		return a.X, a.X + a.W, b.X, b.X + b.W
	}
	return a.Y, a.Y + a.H, b.Y, b.Y + b.H
}
