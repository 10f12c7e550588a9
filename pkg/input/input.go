// pkg/input/input.go
package input

import (
	"github.com/Blckburn/CORE/internal/interfaces"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings — какие клавиши ebiten означают клавишу игры.
var keyBindings = map[interfaces.Key][]ebiten.Key{
	interfaces.KeyUp:     {ebiten.KeyArrowUp},
	interfaces.KeyDown:   {ebiten.KeyArrowDown},
	interfaces.KeyEnter:  {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	interfaces.KeyEscape: {ebiten.KeyEscape},
	interfaces.KeyA:      {ebiten.KeyA},
	interfaces.KeyD:      {ebiten.KeyD},
	interfaces.KeyE:      {ebiten.KeyE},
	interfaces.KeyI:      {ebiten.KeyI},
	interfaces.KeyP:      {ebiten.KeyP},
	interfaces.KeyQ:      {ebiten.KeyQ},
	interfaces.KeyR:      {ebiten.KeyR},
	interfaces.KeyS:      {ebiten.KeyS},
	interfaces.KeyT:      {ebiten.KeyT},
	interfaces.KeyW:      {ebiten.KeyW},
	interfaces.KeyEqual:  {ebiten.KeyEqual, ebiten.KeyNumpadAdd},
	interfaces.KeyMinus:  {ebiten.KeyMinus, ebiten.KeyNumpadSubtract},
}

var mouseBindings = map[interfaces.MouseButton]ebiten.MouseButton{
	interfaces.MouseLeft:   ebiten.MouseButtonLeft,
	interfaces.MouseRight:  ebiten.MouseButtonRight,
	interfaces.MouseMiddle: ebiten.MouseButtonMiddle,
}

// Ebiten — interfaces.Input поверх ebiten. Update нужно звать раз в кадр
// до логики игры.
type Ebiten struct {
	scroll       float32
	lastX, lastY float32
	dx, dy       float32
	tracking     bool
}

func New() *Ebiten {
	return &Ebiten{}
}

// Update копит прокрутку колеса и считает смещение курсора за кадр.
func (in *Ebiten) Update() {
	_, wheelY := ebiten.Wheel()
	x, y := ebiten.CursorPosition()
	in.advance(float32(wheelY), float32(x), float32(y))
}

func (in *Ebiten) advance(wheelY, x, y float32) {
	in.scroll += wheelY
	if in.tracking {
		in.dx, in.dy = x-in.lastX, y-in.lastY
	}
	in.lastX, in.lastY = x, y
	in.tracking = true
}

func (in *Ebiten) IsKeyDown(key interfaces.Key) bool {
	for _, k := range keyBindings[key] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (in *Ebiten) IsKeyPressed(key interfaces.Key) bool {
	for _, k := range keyBindings[key] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (in *Ebiten) IsMouseButtonDown(button interfaces.MouseButton) bool {
	b, ok := mouseBindings[button]
	return ok && ebiten.IsMouseButtonPressed(b)
}

func (in *Ebiten) IsMouseButtonPressed(button interfaces.MouseButton) bool {
	b, ok := mouseBindings[button]
	return ok && inpututil.IsMouseButtonJustPressed(b)
}

// CursorPosition — курсор в логических пикселях окна. Layout отдаёт кадровый
// буфер в физических пикселях, поэтому делим на масштаб монитора.
func (in *Ebiten) CursorPosition() (float32, float32) {
	x, y := in.FramebufferCursorPosition()
	m := ebiten.Monitor()
	if m == nil || m.DeviceScaleFactor() <= 0 {
		return x, y
	}
	scale := float32(m.DeviceScaleFactor())
	return x / scale, y / scale
}

// FramebufferCursorPosition — курсор в пикселях кадрового буфера.
func (in *Ebiten) FramebufferCursorPosition() (float32, float32) {
	x, y := ebiten.CursorPosition()
	return float32(x), float32(y)
}

func (in *Ebiten) CursorDelta() (float32, float32) {
	return in.dx, in.dy
}

func (in *Ebiten) ScrollDelta() float32 {
	return in.scroll
}

func (in *Ebiten) ConsumeScrollDelta() {
	in.scroll = 0
}
