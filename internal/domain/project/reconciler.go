package project

// Reconciler owns the three partitioned project collections shown on the
// dashboard: owned-active, owned-archived, and shared-with-me. All mutations
// go through it so the partition invariant holds at every point: a project
// ID appears in at most one collection, and never twice within one.
//
// Collections keep newest-first insertion order. Updates that don't move a
// project between partitions replace the entry in place without reordering.
type Reconciler struct {
	ownedActive   []Project
	ownedArchived []Project
	shared        []Project
}

// NewReconciler creates an empty reconciler.
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Reset replaces all three collections with fresh server snapshots.
func (r *Reconciler) Reset(ownedActive, ownedArchived, shared []Project) {
	r.ownedActive = dedupe(ownedActive)
	r.ownedArchived = dedupe(ownedArchived)
	r.shared = dedupe(shared)
}

// Create inserts a newly created owned project at the front of owned-active.
// Archived projects are routed through ApplyUpdate instead so they land in
// the right partition.
func (r *Reconciler) Create(p Project) {
	if p.IsArchived {
		r.ApplyUpdate(p)
		return
	}
	r.removeFrom(&r.ownedActive, p.ID)
	r.removeFrom(&r.ownedArchived, p.ID)
	r.ownedActive = append([]Project{p}, r.ownedActive...)
}

// ApplyUpdate applies a single-entity snapshot to the owned partitions.
// Membership is determined by IsArchived:
//   - absent from both owned collections and non-archived: front-insert into
//     owned-active (covers externally created projects surfacing later)
//   - present in owned-active and now archived: move to owned-archived
//   - present in owned-archived and now non-archived: move to owned-active
//   - no archive-state change: replace in place, preserving position
//
// A project currently held in shared-with-me is updated in place there and
// never copied into the owned collections.
func (r *Reconciler) ApplyUpdate(p Project) {
	if replaceIn(r.shared, p) {
		return
	}

	if p.IsArchived {
		r.removeFrom(&r.ownedActive, p.ID)
		if !replaceIn(r.ownedArchived, p) {
			r.ownedArchived = append([]Project{p}, r.ownedArchived...)
		}
		return
	}

	r.removeFrom(&r.ownedArchived, p.ID)
	if !replaceIn(r.ownedActive, p) {
		r.ownedActive = append([]Project{p}, r.ownedActive...)
	}
}

// Remove deletes the project from whichever collection holds it. It reports
// whether anything was removed.
func (r *Reconciler) Remove(id string) bool {
	removed := r.removeFrom(&r.ownedActive, id)
	removed = r.removeFrom(&r.ownedArchived, id) || removed
	removed = r.removeFrom(&r.shared, id) || removed
	return removed
}

// Leave removes the project from shared-with-me only. Owned collections are
// untouched; relinquishing access is not a deletion.
func (r *Reconciler) Leave(id string) bool {
	return r.removeFrom(&r.shared, id)
}

// Get returns the project with the given ID from whichever collection holds
// it, or false if no collection does.
func (r *Reconciler) Get(id string) (Project, bool) {
	for _, list := range [][]Project{r.ownedActive, r.ownedArchived, r.shared} {
		for _, p := range list {
			if p.ID == id {
				return p, true
			}
		}
	}
	return Project{}, false
}

// OwnedActive returns a copy of the owned, non-archived collection.
func (r *Reconciler) OwnedActive() []Project { return clone(r.ownedActive) }

// OwnedArchived returns a copy of the owned, archived collection.
func (r *Reconciler) OwnedArchived() []Project { return clone(r.ownedArchived) }

// Shared returns a copy of the shared-with-me collection.
func (r *Reconciler) Shared() []Project { return clone(r.shared) }

func (r *Reconciler) removeFrom(list *[]Project, id string) bool {
	for i, p := range *list {
		if p.ID == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}

func replaceIn(list []Project, p Project) bool {
	for i := range list {
		if list[i].ID == p.ID {
			list[i] = p
			return true
		}
	}
	return false
}

func dedupe(list []Project) []Project {
	seen := make(map[string]struct{}, len(list))
	out := make([]Project, 0, len(list))
	for _, p := range list {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

func clone(list []Project) []Project {
	out := make([]Project, len(list))
	copy(out, list)
	return out
}
