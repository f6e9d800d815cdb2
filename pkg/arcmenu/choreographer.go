package arcmenu

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/anim"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/constants"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/geometry"
)

// Animation names, so hosts and tests can find the parts of a batch.
const (
	AnimTriggerSpin = "trigger-spin"
	AnimItemSpin    = "item-spin"
	AnimTranslate   = "translate"
	AnimGrow        = "grow"
	AnimShrink      = "shrink"
)

// choreographer builds and starts animations. It never waits on them:
// everything that must happen afterwards is a completion callback.
type choreographer struct {
	settings Settings
	timeline *anim.Timeline
	machine  *Machine
	logger   *slog.Logger
}

// stagger is the start delay of item i out of n.
func (c *choreographer) stagger(i, n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(i) * c.settings.StaggerWindow / time.Duration(n)
}

func (c *choreographer) spinTrigger(trigger *Element) {
	spin := anim.New(anim.Rotate{From: 0, To: constants.TriggerSpinDegrees}).
		WithName(AnimTriggerSpin).
		WithDuration(c.settings.Duration).
		WithFillAfter(true)
	c.timeline.Start(trigger, spin)
}

// fly starts one batch: each item spins 0..720 and translates between the
// trigger's corner and its arc slot, staggered by index. collapse[i] is the
// translation that puts item i on the corner.
func (c *choreographer) fly(tr Transition, items []*Element, collapse []geometry.Offset) {
	n := len(items)
	for i, item := range items {
		off := collapse[i]

		move := anim.Translate{FromX: off.X, FromY: off.Y}
		if tr.Batch.Direction == DirectionClosing {
			move = anim.Translate{ToX: off.X, ToY: off.Y}
		}

		spin := anim.New(anim.Rotate{From: 0, To: constants.ItemSpinDegrees}).
			WithName(AnimItemSpin).
			WithDuration(c.settings.Duration).
			WithFillAfter(true)

		translate := anim.New(move).
			WithName(AnimTranslate).
			WithDuration(c.settings.Duration).
			WithDelay(c.stagger(i, n)).
			WithFillAfter(true).
			WithListener(anim.Listener{OnEnd: c.translateDone(item, tr.Batch)})

		c.timeline.Start(item, anim.NewSet(spin, translate).WithFillAfter(true))
	}
}

// translateDone hides an item once its own closing flight lands.
func (c *choreographer) translateDone(item *Element, batch Batch) func() {
	return func() {
		if c.settings.SupersedeStaleBatches {
			if !c.machine.IsLatest(batch) {
				c.logger.Debug("Dropping completion from superseded batch",
					"batch", batch.ID, "latest", c.machine.LatestBatch(), "element", item.ID)
				return
			}
			if batch.Direction == DirectionClosing {
				item.visible = false
			}
			return
		}

		if c.machine.Status() == StatusClosed {
			item.visible = false
		}
	}
}

// feedback plays the selection effect: the chosen item grows to 4x while
// fading, every other item shrinks to nothing while fading. All items lose
// interactivity for the duration; nothing restores it, the following close
// does. Each item is hidden when its effect ends if the menu is still closed.
func (c *choreographer) feedback(items []*Element, selected int) {
	for i, item := range items {
		item := item // per-iteration copy for the OnEnd closure (go < 1.22 loop semantics)
		var set *anim.Animation
		if i == selected {
			set = anim.NewSet(
				anim.New(anim.Uniform(1, constants.GrowScale)),
				anim.New(anim.Fade{From: 1, To: 0}),
			).WithName(AnimGrow)
		} else {
			set = anim.NewSet(
				anim.New(anim.Uniform(1, 0)),
				anim.New(anim.Fade{From: 1, To: 0}),
			).WithName(AnimShrink)
		}

		set.WithDuration(c.settings.Duration).
			WithFillAfter(true).
			WithListener(anim.Listener{OnEnd: func() {
				if c.machine.Status() == StatusClosed {
					item.visible = false
				}
			}})

		item.setInteractive(false)
		c.timeline.Start(item, set)
	}
}
