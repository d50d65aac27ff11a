package system

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/component"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/levels"
	"github.com/milk9111/jungle/obj"
	"github.com/milk9111/jungle/prefabs"
)

// Config is everything a World needs to populate and run a level.
type Config struct {
	Tuning    *prefabs.Tuning
	Resources *Resources
	Level     *levels.Map
	Store     HighScoreStore
	// Rand drives enemy spawning. Nil seeds from the clock.
	Rand *rand.Rand
}

// World owns every entity of the running level, the simulation clock, the
// spawn timer and the session.
type World struct {
	tuning  *prefabs.Tuning
	res     *Resources
	level   *levels.Map
	session *Session
	rng     *rand.Rand

	ecs       *ecs.World
	objects   *ecs.Store[obj.Object]
	all       *ecs.Group
	collision *ecs.Group
	bullets   *ecs.Group
	enemies   *ecs.Group
	goals     *ecs.Group

	solids *obj.CollisionWorld
	player *obj.Player
	input  obj.Input
	spawn  *component.Timer
	now    time.Duration
}

// NewWorld populates the level described by cfg and starts in PLAY.
func NewWorld(cfg Config) (*World, error) {
	if cfg.Level == nil {
		return nil, fmt.Errorf("system: no level")
	}
	if cfg.Tuning == nil {
		cfg.Tuning = prefabs.DefaultTuning()
	}
	if cfg.Resources == nil {
		cfg.Resources = &Resources{}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w := &World{
		tuning:  cfg.Tuning,
		res:     cfg.Resources,
		level:   cfg.Level,
		session: NewSession(cfg.Store),
		rng:     cfg.Rand,
		ecs:     ecs.NewWorld(),
		solids:  obj.NewCollisionWorld(),
	}
	w.objects = ecs.NewStore[obj.Object](w.ecs)
	w.all = ecs.NewGroup(w.ecs, "all")
	w.collision = ecs.NewGroup(w.ecs, "collision")
	w.bullets = ecs.NewGroup(w.ecs, "bullets")
	w.enemies = ecs.NewGroup(w.ecs, "enemies")
	w.goals = ecs.NewGroup(w.ecs, "goals")
	w.spawn = component.NewTimer(w.tuning.Bee.SpawnPeriod.Duration(), true, w.spawnBee)

	w.populate()
	return w, nil
}

func (w *World) Session() *Session       { return w.session }
func (w *World) Player() *obj.Player     { return w.player }
func (w *World) Now() time.Duration      { return w.now }
func (w *World) Tuning() *prefabs.Tuning { return w.tuning }

// Size returns the level size in world pixels.
func (w *World) Size() (float64, float64) {
	return w.level.Width, w.level.Height
}

// Counts returns the live entity, enemy and bullet counts.
func (w *World) Counts() (entities, enemies, bullets int) {
	return w.ecs.Count(), w.enemies.Len(), w.bullets.Len()
}

// SetTuning applies reloaded constants. The player's motion and the spawn
// cadence change at once; other entities pick the new values up when they
// are next created.
func (w *World) SetTuning(t *prefabs.Tuning) {
	if t == nil {
		return
	}
	w.tuning = t
	w.player.SetTuning(t.Player)
	w.spawn.Duration = t.Bee.SpawnPeriod.Duration()
}

// Update consumes one frame of input. Quit persists the score and reports
// true; restart is honoured only from DEAD or WIN; the simulation only
// advances while playing.
func (w *World) Update(in obj.Input, dt float64) bool {
	w.input = in
	if in.Quit {
		w.session.Persist()
		return true
	}
	switch w.session.State() {
	case StatePlay:
		w.Step(dt)
	case StateDead, StateWin:
		if in.Restart {
			w.Reset()
		}
	}
	return false
}

// Step advances the clock by dt seconds and runs one simulation frame:
// spawn timer, entity updates in insertion order, then collisions.
func (w *World) Step(dt float64) {
	w.now += time.Duration(math.Round(dt * float64(time.Second)))
	w.spawn.Tick(w.now)

	ctx := &obj.Context{Now: w.now, Dt: dt, Kill: w.kill}
	w.all.Each(func(e ecs.Entity) bool {
		if u, ok := w.object(e).(obj.Updatable); ok {
			u.Update(ctx)
		}
		return true
	})

	w.collide()
	w.ecs.Compact()
}

// Reset persists the score, clears every group and rebuilds the level.
func (w *World) Reset() {
	w.session.Reset()
	w.ecs.Reset()
	w.solids.Clear()
	w.populate()
	log.Info("level reset", "high", w.session.HighScore())
}

// EachDrawable visits drawable entities in insertion order until fn
// returns false.
func (w *World) EachDrawable(fn func(d obj.Drawable) bool) {
	w.all.Each(func(e ecs.Entity) bool {
		if d, ok := w.object(e).(obj.Drawable); ok {
			return fn(d)
		}
		return true
	})
}

// EachEnemy walks live enemies in spawn order.
func (w *World) EachEnemy(fn func(e *obj.Enemy) bool) {
	w.enemies.Each(func(e ecs.Entity) bool {
		if h, ok := w.object(e).(obj.Hostile); ok {
			return fn(h.Base())
		}
		return true
	})
}

// Solids returns the static collision rectangles.
func (w *World) Solids() []cp.BB {
	rects := w.solids.Solids()
	out := make([]cp.BB, len(rects))
	for i, r := range rects {
		out[i] = r.BB()
	}
	return out
}

func (w *World) object(e ecs.Entity) obj.Object {
	o, _ := w.objects.Get(e)
	return o
}

func (w *World) add(o obj.Object, groups ...*ecs.Group) {
	w.objects.Set(o.ID(), o)
	for _, g := range groups {
		g.Add(o.ID())
	}
}

func (w *World) kill(e ecs.Entity) {
	w.ecs.DestroyEntity(e)
}

func (w *World) populate() {
	for _, p := range w.level.Background {
		w.add(obj.NewSprite(w.ecs.CreateEntity(), p.Pos, p.Frame), w.all)
	}
	for _, p := range w.level.Main {
		w.add(obj.NewSprite(w.ecs.CreateEntity(), p.Pos, p.Frame), w.all)
		if tile := obj.NewCollisionTile(w.ecs.CreateEntity(), p.Pos, p.Frame); tile != nil {
			w.add(tile, w.collision)
			w.solids.Add(tile.Bounds())
		}
	}
	for _, p := range w.level.Decoration {
		w.add(obj.NewSprite(w.ecs.CreateEntity(), p.Pos, p.Frame), w.all)
	}

	w.player = obj.NewPlayer(w.ecs.CreateEntity(), w.level.PlayerSpawn, w.res.Player, w.tuning.Player, &w.input, w.solids, w.spawnBullet)
	w.add(w.player, w.all)

	for _, patrol := range w.level.Snakes {
		speed := obj.RandomSnakeSpeed(w.rng, w.tuning.Snake)
		w.add(obj.NewSnake(w.ecs.CreateEntity(), patrol, w.res.Snake, w.tuning.Enemy, speed), w.all, w.enemies)
	}
	for _, r := range w.level.Goals {
		w.add(obj.NewGoal(w.ecs.CreateEntity(), r), w.goals)
	}

	w.spawn.Arm(w.now)
}

// spawnBee launches a bee from beyond the right edge of the level at a
// random height.
func (w *World) spawnBee() {
	levelW, levelH := w.Size()
	pos := cp.Vector{
		X: levelW + float64(w.tuning.Window.Width),
		Y: float64(w.rng.Intn(int(levelH) + 1)),
	}
	motion := obj.RandomBeeMotion(w.rng, w.tuning.Bee)
	bee := obj.NewBee(w.ecs.CreateEntity(), pos, w.res.Bee, w.tuning.Enemy, motion)
	w.add(bee, w.all, w.enemies)
	log.Debug("bee spawned", "id", bee.ID(), "y", pos.Y, "speed", motion.Speed)
}

// spawnBullet fires from the player's centre pos. The bullet starts past
// the muzzle on the facing side; the flash is anchored to the player.
func (w *World) spawnBullet(pos cp.Vector, dir float64) {
	offset := w.tuning.Bullet.MuzzleOffset
	x := pos.X + dir*offset
	if dir < 0 {
		bw, _ := w.res.Bullet.Size()
		x -= float64(bw)
	}

	b := obj.NewBullet(w.ecs.CreateEntity(), cp.Vector{X: x, Y: pos.Y}, dir, w.res.Bullet, w.tuning.Bullet, w, w.OnBulletHit)
	levelW, _ := w.Size()
	margin := w.tuning.BulletMargin()
	b.SetLimits(-margin, levelW+float64(w.tuning.Window.Width)+margin)
	w.add(b, w.all, w.bullets)

	if w.res.Fire != nil {
		w.add(obj.NewFire(w.ecs.CreateEntity(), pos, w.res.Fire, w.player, w.tuning.Fire, w.now), w.all)
	}
	w.res.Play("shoot")
}

// OnBulletHit removes the bullet and destroys what it hit. A point is
// scored for each enemy that was still alive.
func (w *World) OnBulletHit(b *obj.Bullet, hits []*obj.Enemy) {
	w.res.Play("impact")
	w.kill(b.ID())
	for _, e := range hits {
		if e.Destroy(w.now) {
			w.session.AddScore(1)
		}
	}
}

// collide runs the world-level passes after every entity has moved: a sweep
// of all bullets against all enemies, then enemy contact and goal contact
// for the player while still playing. The sweep only finds enemies that
// moved into a bullet after the bullet updated; those kills do not score.
func (w *World) collide() {
	w.bullets.Each(func(be ecs.Entity) bool {
		b, ok := w.object(be).(*obj.Bullet)
		if !ok {
			return true
		}
		var hits []*obj.Enemy
		w.EachEnemy(func(e *obj.Enemy) bool {
			if obj.Collide(b, e) {
				hits = append(hits, e)
			}
			return true
		})
		if len(hits) > 0 {
			w.res.Play("impact")
			w.kill(be)
			for _, e := range hits {
				e.Destroy(w.now)
			}
		}
		return true
	})

	if w.session.State() == StatePlay && w.touchesEnemy() {
		w.session.Die()
	}
	if w.session.State() == StatePlay && w.touchesGoal() {
		w.session.Win()
	}
}

func (w *World) touchesEnemy() bool {
	hit := false
	w.EachEnemy(func(e *obj.Enemy) bool {
		hit = obj.Collide(w.player, e)
		return !hit
	})
	return hit
}

func (w *World) touchesGoal() bool {
	hit := false
	bounds := w.player.Bounds()
	w.goals.Each(func(e ecs.Entity) bool {
		if g := w.object(e); g != nil && g.Bounds().Intersects(bounds) {
			hit = true
		}
		return !hit
	})
	return hit
}
