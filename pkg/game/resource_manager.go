package game

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/config"
	"github.com/decker502/hunt3d/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// FileReader reads a data file by its slash-separated path (e.g. "data/characters/steve.yaml").
// The app passes either the embedded reader or an os.ReadFile rooted at -data.
type FileReader func(path string) ([]byte, error)

// LoadState is the loading state of a single asset handle.
type LoadState int

const (
	// LoadStateUnknown means the handle was never issued by this manager.
	LoadStateUnknown LoadState = iota
	// LoadStateLoading means the asset is being read in the background.
	LoadStateLoading
	// LoadStateLoaded means the asset is available.
	LoadStateLoaded
	// LoadStateFailed means reading or parsing failed; see ResourceManager.Err.
	LoadStateFailed
)

// ErrAssetNotLoaded is returned when a clip or scene is looked up before its character finished loading.
var ErrAssetNotLoaded = errors.New("asset not loaded")

// SceneAsset is the node tree of a character, instantiated by SceneSpawnSystem.
type SceneAsset struct {
	Character string
	Nodes     []config.SceneNodeConfig
}

// ClipAsset is a single animation clip of a character.
type ClipAsset struct {
	Character string
	Name      string
	Index     int
	Duration  float64
}

// CharacterAsset groups everything loaded from one character descriptor.
type CharacterAsset struct {
	Config *config.CharacterConfig
	Scene  components.AssetHandle
	// Clips holds one handle per clip, in descriptor order (Clips[12] is "Animation12").
	Clips []components.AssetHandle
}

// ResourceManager is the asset collaborator of the simulation.
// It hands out handles immediately and loads character descriptors in the background,
// mirroring how a scene asset is requested at startup and becomes usable a few frames later.
//
// Handles are stable for the lifetime of the manager. Clip handles exist only once their
// character has loaded; scene handles exist as soon as the character is requested, so the
// loading state can poll IsLoadedWithDependencies on them.
//
// All methods are safe for concurrent use: background loaders write results under mu while
// the game loop polls.
type ResourceManager struct {
	read FileReader

	mu         sync.RWMutex
	nextHandle components.AssetHandle
	states     map[components.AssetHandle]LoadState
	errs       map[components.AssetHandle]error
	deps       map[components.AssetHandle][]components.AssetHandle
	scenes     map[components.AssetHandle]*SceneAsset
	clips      map[components.AssetHandle]*ClipAsset
	characters map[string]*CharacterAsset
	labels     map[string]components.AssetHandle // "steve", "steve#Run", "steve#Animation12"

	group *errgroup.Group
}

// NewResourceManager creates a manager reading character descriptors through read.
func NewResourceManager(read FileReader) *ResourceManager {
	return &ResourceManager{
		read:       read,
		nextHandle: components.NoAsset,
		states:     make(map[components.AssetHandle]LoadState),
		errs:       make(map[components.AssetHandle]error),
		deps:       make(map[components.AssetHandle][]components.AssetHandle),
		scenes:     make(map[components.AssetHandle]*SceneAsset),
		clips:      make(map[components.AssetHandle]*ClipAsset),
		characters: make(map[string]*CharacterAsset),
		labels:     make(map[string]components.AssetHandle),
	}
}

// CharacterPath returns the descriptor path of a character id.
func CharacterPath(id string) string {
	return "data/characters/" + id + ".yaml"
}

// allocLocked issues a new handle. Caller holds mu.
func (rm *ResourceManager) allocLocked(state LoadState) components.AssetHandle {
	rm.nextHandle++
	rm.states[rm.nextHandle] = state
	return rm.nextHandle
}

// LoadCharacters starts loading the given characters concurrently and returns their scene
// handles in the same order. Characters already requested keep their existing handle.
//
// Loading continues in the background after this call returns; use IsLoadedWithDependencies
// to poll, or Wait to block (tests, tools).
func (rm *ResourceManager) LoadCharacters(ctx context.Context, ids ...string) []components.AssetHandle {
	handles := make([]components.AssetHandle, len(ids))
	var pending []string

	rm.mu.Lock()
	if rm.group == nil {
		rm.group, _ = errgroup.WithContext(ctx)
	}
	group := rm.group
	for i, id := range ids {
		if h, ok := rm.labels[id]; ok {
			handles[i] = h
			continue
		}
		h := rm.allocLocked(LoadStateLoading)
		rm.labels[id] = h
		handles[i] = h
		pending = append(pending, id)
	}
	rm.mu.Unlock()

	for _, id := range pending {
		id := id
		group.Go(func() error {
			return rm.loadCharacter(ctx, id)
		})
	}
	return handles
}

// loadCharacter runs on a loader goroutine.
func (rm *ResourceManager) loadCharacter(ctx context.Context, id string) error {
	var cfg *config.CharacterConfig
	data, err := rm.read(CharacterPath(id))
	if err == nil {
		err = ctx.Err()
	}
	if err == nil {
		cfg, err = config.ParseCharacterConfig(data)
	}
	if err == nil && cfg.ID != id {
		err = fmt.Errorf("descriptor id %q does not match file name %q", cfg.ID, id)
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	sceneHandle := rm.labels[id]
	if err != nil {
		err = fmt.Errorf("load character %s: %w", id, err)
		rm.states[sceneHandle] = LoadStateFailed
		rm.errs[sceneHandle] = err
		logger.Log.WithField("character", id).Errorf("[ResourceManager] %v", err)
		return err
	}

	asset := &CharacterAsset{Config: cfg, Scene: sceneHandle}
	for i, clip := range cfg.Clips {
		h := rm.allocLocked(LoadStateLoaded)
		rm.clips[h] = &ClipAsset{Character: id, Name: clip.Name, Index: i, Duration: clip.Duration}
		rm.labels[id+"#"+clip.Name] = h
		rm.labels[id+"#Animation"+strconv.Itoa(i)] = h
		asset.Clips = append(asset.Clips, h)
	}
	rm.scenes[sceneHandle] = &SceneAsset{Character: id, Nodes: cfg.Scene.Nodes}
	rm.deps[sceneHandle] = asset.Clips
	rm.characters[id] = asset
	rm.states[sceneHandle] = LoadStateLoaded

	logger.Log.WithField("character", id).Debugf("[ResourceManager] 角色资源加载完成: %d 个动画片段", len(cfg.Clips))
	return nil
}

// Wait blocks until every requested character finished loading and returns the first error.
func (rm *ResourceManager) Wait() error {
	rm.mu.RLock()
	group := rm.group
	rm.mu.RUnlock()
	if group == nil {
		return nil
	}
	return group.Wait()
}

// State returns the load state of a handle.
func (rm *ResourceManager) State(h components.AssetHandle) LoadState {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.states[h]
}

// Err returns the load error of a failed handle.
func (rm *ResourceManager) Err(h components.AssetHandle) error {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.errs[h]
}

// IsLoadedWithDependencies reports whether the asset and everything it references are loaded.
func (rm *ResourceManager) IsLoadedWithDependencies(h components.AssetHandle) bool {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	if rm.states[h] != LoadStateLoaded {
		return false
	}
	for _, dep := range rm.deps[h] {
		if rm.states[dep] != LoadStateLoaded {
			return false
		}
	}
	return true
}

// Character returns a loaded character.
func (rm *ResourceManager) Character(id string) (*CharacterAsset, error) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	asset, ok := rm.characters[id]
	if !ok {
		return nil, fmt.Errorf("character %s: %w", id, ErrAssetNotLoaded)
	}
	return asset, nil
}

// Scene returns a loaded scene asset.
func (rm *ResourceManager) Scene(h components.AssetHandle) (*SceneAsset, bool) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	scene, ok := rm.scenes[h]
	return scene, ok
}

// Clip returns a loaded clip asset.
func (rm *ResourceManager) Clip(h components.AssetHandle) (*ClipAsset, bool) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	clip, ok := rm.clips[h]
	return clip, ok
}

// ClipHandle resolves a clip label of the form "<character>#<ClipName>" or the positional
// "<character>#Animation<N>". Positional labels are kept for compatibility only; factories
// resolve clips by role name.
func (rm *ResourceManager) ClipHandle(label string) (components.AssetHandle, error) {
	character, _, found := strings.Cut(label, "#")
	if !found {
		return components.NoAsset, fmt.Errorf("clip label %q must look like character#Clip", label)
	}

	rm.mu.RLock()
	defer rm.mu.RUnlock()
	if _, ok := rm.characters[character]; !ok {
		return components.NoAsset, fmt.Errorf("clip %s: %w", label, ErrAssetNotLoaded)
	}
	h, ok := rm.labels[label]
	if !ok {
		return components.NoAsset, fmt.Errorf("character %s has no clip %q", character, label)
	}
	return h, nil
}

// ClipName returns a readable name for a clip handle, used by logs and the debug view.
func (rm *ResourceManager) ClipName(h components.AssetHandle) string {
	if clip, ok := rm.Clip(h); ok {
		return clip.Name
	}
	return "-"
}
