package game

import (
	"context"
	"fmt"

	"github.com/decker502/hunt3d/pkg/logger"
	"github.com/looplab/fsm"
)

// 游戏状态
const (
	StateLoading  = "loading"
	StatePlaying  = "playing"
	StateGameOver = "game_over"
)

// 状态切换事件
const (
	EventAssetsReady = "assets_ready"
	EventPlayerDied  = "player_died"
	EventRestart     = "restart"
)

// StateMachine 全局游戏状态机（Loading → Playing → GameOver → Loading）
//
// 进入某个状态时依次调用通过 OnEnter 注册的回调。
// 回调里不能再调用 Fire，looplab/fsm 在回调期间持有转换锁。
type StateMachine struct {
	fsm     *fsm.FSM
	onEnter map[string][]func()
}

// NewStateMachine 创建处于 Loading 状态的状态机
func NewStateMachine() *StateMachine {
	sm := &StateMachine{onEnter: make(map[string][]func())}
	sm.fsm = fsm.NewFSM(
		StateLoading,
		fsm.Events{
			{Name: EventAssetsReady, Src: []string{StateLoading}, Dst: StatePlaying},
			{Name: EventPlayerDied, Src: []string{StatePlaying}, Dst: StateGameOver},
			{Name: EventRestart, Src: []string{StateGameOver, StatePlaying}, Dst: StateLoading},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Log.Infof("[StateMachine] %s -> %s (%s)", e.Src, e.Dst, e.Event)
				for _, fn := range sm.onEnter[e.Dst] {
					fn()
				}
			},
		},
	)
	return sm
}

// OnEnter 注册进入 state 时的回调
func (sm *StateMachine) OnEnter(state string, fn func()) {
	sm.onEnter[state] = append(sm.onEnter[state], fn)
}

// Current 返回当前状态
func (sm *StateMachine) Current() string {
	return sm.fsm.Current()
}

// Is 判断当前是否处于 state
func (sm *StateMachine) Is(state string) bool {
	return sm.fsm.Is(state)
}

// Can 判断 event 在当前状态下是否可用
func (sm *StateMachine) Can(event string) bool {
	return sm.fsm.Can(event)
}

// Fire 触发事件
func (sm *StateMachine) Fire(event string) error {
	if err := sm.fsm.Event(context.Background(), event); err != nil {
		return fmt.Errorf("state %s: event %s: %w", sm.fsm.Current(), event, err)
	}
	return nil
}
