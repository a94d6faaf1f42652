package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key 游戏用到的按键
type Key int

const (
	KeyForward   Key = iota // W
	KeyBackward             // S
	KeyTurnLeft             // A
	KeyTurnRight            // D
	KeyFast                 // Shift
	KeyRestart              // R
	KeySpeedPlot            // F3
	KeyColliders            // F4
	KeyFullscreen           // F11
)

// Keyboard 键盘状态查询，系统通过它读取输入，测试中用 StaticKeyboard 代替
type Keyboard interface {
	// Pressed 按键当前是否按下
	Pressed(key Key) bool
	// JustPressed 按键是否在本帧刚按下
	JustPressed(key Key) bool
}

// EbitenKeyboard 基于 ebiten 的键盘实现
type EbitenKeyboard struct{}

var ebitenKeys = map[Key][]ebiten.Key{
	KeyForward:    {ebiten.KeyW},
	KeyBackward:   {ebiten.KeyS},
	KeyTurnLeft:   {ebiten.KeyA},
	KeyTurnRight:  {ebiten.KeyD},
	KeyFast:       {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	KeyRestart:    {ebiten.KeyR},
	KeySpeedPlot:  {ebiten.KeyF3},
	KeyColliders:  {ebiten.KeyF4},
	KeyFullscreen: {ebiten.KeyF11},
}

// Pressed 实现 Keyboard
func (EbitenKeyboard) Pressed(key Key) bool {
	for _, k := range ebitenKeys[key] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// JustPressed 实现 Keyboard
func (EbitenKeyboard) JustPressed(key Key) bool {
	for _, k := range ebitenKeys[key] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// StaticKeyboard 固定的键盘状态
//
// Held 中的键视为一直按下；Tapped 中的键在下一次 JustPressed 查询后清除。
type StaticKeyboard struct {
	Held   map[Key]bool
	Tapped map[Key]bool
}

// NewStaticKeyboard 创建按住 held 的键盘
func NewStaticKeyboard(held ...Key) *StaticKeyboard {
	k := &StaticKeyboard{Held: make(map[Key]bool), Tapped: make(map[Key]bool)}
	for _, key := range held {
		k.Held[key] = true
	}
	return k
}

// Tap 模拟一次按下
func (k *StaticKeyboard) Tap(key Key) {
	k.Tapped[key] = true
}

// Pressed 实现 Keyboard
func (k *StaticKeyboard) Pressed(key Key) bool {
	return k.Held[key]
}

// JustPressed 实现 Keyboard
func (k *StaticKeyboard) JustPressed(key Key) bool {
	if k.Tapped[key] {
		delete(k.Tapped, key)
		return true
	}
	return false
}
