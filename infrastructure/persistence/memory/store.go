// Package memory keeps the whole table in process memory. It backs the
// local server when STORAGE_BACKEND=memory and the handler tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"gorgonzola/application/ports"
	"gorgonzola/domain/core/entities"
	"gorgonzola/domain/core/valueobjects"
	pkgerrors "gorgonzola/pkg/errors"
)

// Store implements every storage port over maps guarded by one lock
type Store struct {
	mu      sync.RWMutex
	items   map[string]entities.Item
	recipes map[string]entities.Recipe
	npcs    map[string]entities.NPC
	quests  map[string]entities.Quest
	prices  map[valueobjects.Key]entities.Price
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		items:   make(map[string]entities.Item),
		recipes: make(map[string]entities.Recipe),
		npcs:    make(map[string]entities.NPC),
		quests:  make(map[string]entities.Quest),
		prices:  make(map[valueobjects.Key]entities.Price),
	}
}

var (
	_ ports.CatalogWriter    = (*Store)(nil)
	_ ports.TableMaintenance = (*Store)(nil)
	_ ports.PriceRepository  = (*Store)(nil)
)

// Items returns the store's ItemRepository view
func (s *Store) Items() ports.ItemRepository { return itemView{s} }

// Recipes returns the store's RecipeRepository view
func (s *Store) Recipes() ports.RecipeRepository { return recipeView{s} }

// NPCs returns the store's NPCRepository view
func (s *Store) NPCs() ports.NPCRepository { return npcView{s} }

// Quests returns the store's QuestRepository view
func (s *Store) Quests() ports.QuestRepository { return questView{s} }

func (s *Store) PutItems(ctx context.Context, items []*entities.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		s.items[it.ID] = *it
	}
	return nil
}

func (s *Store) PutRecipes(ctx context.Context, recipes []*entities.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range recipes {
		s.recipes[r.ID] = *r
	}
	return nil
}

func (s *Store) PutNPCs(ctx context.Context, npcs []*entities.NPC) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range npcs {
		s.npcs[n.ID] = *n
	}
	return nil
}

func (s *Store) PutQuests(ctx context.Context, quests []*entities.Quest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range quests {
		s.quests[q.ID] = *q
	}
	return nil
}

// Save stores a price under its item partition key
func (s *Store) Save(ctx context.Context, price *entities.Price) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[price.Key()] = *price
	return nil
}

// ListForItem returns the item's prices, newest first
func (s *Store) ListForItem(ctx context.Context, itemID string) ([]*entities.Price, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	partition := valueobjects.ItemPartition(itemID)
	out := make([]*entities.Price, 0)
	for k, p := range s.prices {
		if k.PK == partition {
			p := p
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Timestamp > out[b].Timestamp })
	return out, nil
}

// ScanKeys lists every key, sorted for stable output
func (s *Store) ScanKeys(ctx context.Context) ([]valueobjects.Key, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]valueobjects.Key, 0, len(s.items)+len(s.recipes)+len(s.npcs)+len(s.quests)+len(s.prices))
	for id := range s.items {
		keys = append(keys, valueobjects.ItemKey(id))
	}
	for id := range s.recipes {
		keys = append(keys, valueobjects.RecipeKey(id))
	}
	for id := range s.npcs {
		keys = append(keys, valueobjects.NPCKey(id))
	}
	for id := range s.quests {
		keys = append(keys, valueobjects.QuestKey(id))
	}
	for k := range s.prices {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a].String() < keys[b].String() })
	return keys, nil
}

// DeleteKeys removes the records at keys; unknown keys are ignored
func (s *Store) DeleteKeys(ctx context.Context, keys []valueobjects.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		if k.IsPrice() {
			delete(s.prices, k)
			continue
		}
		id := valueobjects.ParseKeyID(k.PK)
		switch {
		case k == valueobjects.ItemKey(id):
			delete(s.items, id)
		case k == valueobjects.RecipeKey(id):
			delete(s.recipes, id)
		case k == valueobjects.NPCKey(id):
			delete(s.npcs, id)
		case k == valueobjects.QuestKey(id):
			delete(s.quests, id)
		}
	}
	return nil
}

type itemView struct{ s *Store }

func (v itemView) GetByID(ctx context.Context, id string) (*entities.Item, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	it, ok := v.s.items[id]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("Item")
	}
	it.Normalize()
	return &it, nil
}

func (v itemView) Search(ctx context.Context, search string) ([]*entities.Item, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	term := valueobjects.SearchTerm(search)
	out := make([]*entities.Item, 0)
	for _, it := range v.s.items {
		if strings.Contains(it.SortKey(), term) {
			it := it
			it.Normalize()
			out = append(out, &it)
		}
	}
	sortBySortKey(out)
	return out, nil
}

type recipeView struct{ s *Store }

func (v recipeView) GetByID(ctx context.Context, id string) (*entities.Recipe, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	r, ok := v.s.recipes[id]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("Recipe")
	}
	r.Normalize()
	return &r, nil
}

func (v recipeView) List(ctx context.Context, skill string) ([]*entities.Recipe, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	prefix := ""
	if skill != "" {
		prefix = valueobjects.RecipeSkillPrefix(skill)
	}
	out := make([]*entities.Recipe, 0)
	for _, r := range v.s.recipes {
		if strings.HasPrefix(r.SortKey(), prefix) {
			r := r
			r.Normalize()
			out = append(out, &r)
		}
	}
	sortBySortKey(out)
	return out, nil
}

type npcView struct{ s *Store }

func (v npcView) GetByID(ctx context.Context, id string) (*entities.NPC, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	n, ok := v.s.npcs[id]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("NPC")
	}
	n.Normalize()
	return &n, nil
}

func (v npcView) Search(ctx context.Context, search string) ([]*entities.NPC, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	term := valueobjects.SearchTerm(search)
	out := make([]*entities.NPC, 0)
	for _, n := range v.s.npcs {
		if strings.Contains(n.SortKey(), term) {
			n := n
			n.Normalize()
			out = append(out, &n)
		}
	}
	sortBySortKey(out)
	return out, nil
}

type questView struct{ s *Store }

func (v questView) GetByID(ctx context.Context, id string) (*entities.Quest, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	q, ok := v.s.quests[id]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("Quest")
	}
	q.Normalize()
	return &q, nil
}

func (v questView) Search(ctx context.Context, search string) ([]*entities.Quest, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	term := valueobjects.SearchTerm(search)
	out := make([]*entities.Quest, 0)
	for _, q := range v.s.quests {
		if strings.Contains(q.SortKey(), term) {
			q := q
			q.Normalize()
			out = append(out, &q)
		}
	}
	sortBySortKey(out)
	return out, nil
}

// sortBySortKey mirrors entity index ordering
func sortBySortKey[E interface {
	SortKey() string
	Key() valueobjects.Key
}](out []E) {
	sort.Slice(out, func(a, b int) bool {
		ka, kb := out[a].SortKey(), out[b].SortKey()
		if ka != kb {
			return ka < kb
		}
		return out[a].Key().PK < out[b].Key().PK
	})
}
