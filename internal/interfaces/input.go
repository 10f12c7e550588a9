// internal/interfaces/input.go
package interfaces

// Key — клавиша, которую понимает игра. Адаптер ввода переводит её в коды платформы.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
	KeyA
	KeyD
	KeyE
	KeyI
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyW
	KeyEqual // «+» без Shift
	KeyMinus
)

// MouseButton — кнопка мыши.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Input — опрос ввода за текущий кадр.
type Input interface {
	// IsKeyDown — клавиша зажата.
	IsKeyDown(key Key) bool
	// IsKeyPressed — клавиша нажата именно в этом кадре.
	IsKeyPressed(key Key) bool
	IsMouseButtonDown(button MouseButton) bool
	IsMouseButtonPressed(button MouseButton) bool
	// CursorPosition — курсор в логических пикселях окна.
	CursorPosition() (x, y float32)
	// FramebufferCursorPosition — курсор в пикселях кадрового буфера (HiDPI).
	FramebufferCursorPosition() (x, y float32)
	// CursorDelta — смещение курсора с прошлого кадра.
	CursorDelta() (dx, dy float32)
	// ScrollDelta — накопленная прокрутка колеса, пока её не поглотили.
	ScrollDelta() float32
	// ConsumeScrollDelta обнуляет накопленную прокрутку.
	ConsumeScrollDelta()
}
