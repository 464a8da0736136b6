package storage

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newAlbumFixture(t *testing.T, photoIDs ...int64) (*AlbumRepo, *PhotoRepo) {
	t.Helper()
	db := newTestDB(t)
	photos := NewPhotoRepo(db, nil)
	for _, id := range photoIDs {
		seedPhotos(t, photos, testPhoto(id, id*1000, "/a/p.jpg"))
	}
	albums := NewAlbumRepo(db, nil)
	albums.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	return albums, photos
}

func memberIDs(t *testing.T, repo *AlbumRepo, albumID int64) []int64 {
	t.Helper()
	members, err := repo.Members(context.Background(), albumID)
	if err != nil {
		t.Fatalf("Members() error = %v", err)
	}
	ids := make([]int64, len(members))
	for i, m := range members {
		if m.Order != int64(i) {
			t.Errorf("member %d has order %d, want %d", m.PhotoID, m.Order, i)
		}
		ids[i] = m.PhotoID
	}
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAlbumRepo_CreateGetList(t *testing.T) {
	repo, _ := newAlbumFixture(t)
	ctx := context.Background()

	album := &AlbumRecord{Name: "Holidays", Tag: "web"}
	if err := repo.Create(ctx, album); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if album.ID == 0 {
		t.Error("Create() did not set ID")
	}
	if album.DateCreated != 1_700_000_000_000 || album.DateModified != album.DateCreated {
		t.Errorf("Create() timestamps = %d/%d", album.DateCreated, album.DateModified)
	}

	got, err := repo.GetByID(ctx, album.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "Holidays" || got.Tag != "web" {
		t.Errorf("GetByID() = %+v", got)
	}

	if err := repo.Create(ctx, &AlbumRecord{Name: "Family", Tag: "web"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	list, err := repo.List(ctx, "holi")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 || list[0].ID != album.ID {
		t.Errorf("List(holi) = %+v", list)
	}

	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID(999) error = %v, want ErrNotFound", err)
	}
}

func TestAlbumRepo_AddMemberOrdering(t *testing.T) {
	tests := []struct {
		name   string
		adds   [][2]int64 // photo id, order
		want   []int64
		orders []int64
	}{
		{
			name:   "append",
			adds:   [][2]int64{{1, -1}, {2, -1}, {3, -1}},
			want:   []int64{1, 2, 3},
			orders: []int64{0, 1, 2},
		},
		{
			name:   "insert at front shifts others back",
			adds:   [][2]int64{{1, -1}, {2, -1}, {3, 0}},
			want:   []int64{3, 1, 2},
			orders: []int64{0, 1, 0},
		},
		{
			name:   "insert in middle",
			adds:   [][2]int64{{1, 0}, {2, 1}, {3, 1}},
			want:   []int64{1, 3, 2},
			orders: []int64{0, 1, 1},
		},
		{
			name:   "out of range order appends",
			adds:   [][2]int64{{1, 0}, {2, 10}},
			want:   []int64{1, 2},
			orders: []int64{0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := newAlbumFixture(t, 1, 2, 3)
			ctx := context.Background()
			album := &AlbumRecord{Name: "a", Tag: "t"}
			if err := repo.Create(ctx, album); err != nil {
				t.Fatalf("Create() error = %v", err)
			}

			for i, add := range tt.adds {
				m, err := repo.AddMember(ctx, album.ID, add[0], add[1])
				if err != nil {
					t.Fatalf("AddMember(%d) error = %v", add[0], err)
				}
				if m.Order != tt.orders[i] {
					t.Errorf("AddMember(%d) order = %d, want %d", add[0], m.Order, tt.orders[i])
				}
			}

			if got := memberIDs(t, repo, album.ID); !equalIDs(got, tt.want) {
				t.Errorf("Members() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlbumRepo_AddMemberConflicts(t *testing.T) {
	repo, _ := newAlbumFixture(t, 1)
	ctx := context.Background()
	album := &AlbumRecord{Name: "a", Tag: "t"}
	if err := repo.Create(ctx, album); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := repo.AddMember(ctx, album.ID, 1, 0); err != nil {
		t.Fatalf("AddMember() error = %v", err)
	}
	if _, err := repo.AddMember(ctx, album.ID, 1, 0); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate AddMember() error = %v, want ErrConflict", err)
	}
	if _, err := repo.AddMember(ctx, album.ID, 404, 0); !errors.Is(err, ErrConflict) {
		t.Errorf("AddMember() of uncached photo error = %v, want ErrConflict", err)
	}

	if got := memberIDs(t, repo, album.ID); !equalIDs(got, []int64{1}) {
		t.Errorf("Members() after conflicts = %v, want [1]", got)
	}
}

func TestAlbumRepo_RemoveMemberCompactsOrder(t *testing.T) {
	repo, _ := newAlbumFixture(t, 1, 2, 3)
	ctx := context.Background()
	album := &AlbumRecord{Name: "a", Tag: "t"}
	if err := repo.Create(ctx, album); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	for _, id := range []int64{1, 2, 3} {
		if _, err := repo.AddMember(ctx, album.ID, id, -1); err != nil {
			t.Fatalf("AddMember(%d) error = %v", id, err)
		}
	}

	if err := repo.RemoveMember(ctx, album.ID, 2); err != nil {
		t.Fatalf("RemoveMember() error = %v", err)
	}
	if got := memberIDs(t, repo, album.ID); !equalIDs(got, []int64{1, 3}) {
		t.Errorf("Members() = %v, want [1 3]", got)
	}

	if err := repo.RemoveMember(ctx, album.ID, 2); !errors.Is(err, ErrNotFound) {
		t.Errorf("second RemoveMember() error = %v, want ErrNotFound", err)
	}
}

func TestAlbumRepo_Cascades(t *testing.T) {
	repo, photos := newAlbumFixture(t, 1, 2)
	ctx := context.Background()
	album := &AlbumRecord{Name: "a", Tag: "t"}
	if err := repo.Create(ctx, album); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	for _, id := range []int64{1, 2} {
		if _, err := repo.AddMember(ctx, album.ID, id, -1); err != nil {
			t.Fatalf("AddMember(%d) error = %v", id, err)
		}
	}

	// Refreshing a cached photo keeps its membership.
	seedPhotos(t, photos, testPhoto(1, 9000, "/a/p.jpg"))
	members, err := repo.Members(ctx, album.ID)
	if err != nil {
		t.Fatalf("Members() error = %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("Members() after photo refresh len = %d, want 2", len(members))
	}

	// Photos that leave the cache leave their albums.
	if _, err := photos.DeleteNotIn(ctx, []int64{2}); err != nil {
		t.Fatalf("DeleteNotIn() error = %v", err)
	}
	members, err = repo.Members(ctx, album.ID)
	if err != nil {
		t.Fatalf("Members() error = %v", err)
	}
	if len(members) != 1 || members[0].PhotoID != 2 {
		t.Errorf("Members() after photo delete = %+v", members)
	}

	if err := repo.Delete(ctx, album.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	members, err = repo.Members(ctx, album.ID)
	if err != nil {
		t.Fatalf("Members() error = %v", err)
	}
	if len(members) != 0 {
		t.Errorf("Members() after album delete = %+v", members)
	}
	if err := repo.Delete(ctx, album.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestAlbumRepo_MembersWhileSyncWrites(t *testing.T) {
	repo, photos := newAlbumFixture(t, 1)
	ctx := context.Background()
	album := &AlbumRecord{Name: "a", Tag: "t"}
	if err := repo.Create(ctx, album); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	batch := make([]PhotoRecord, 2000)
	for i := range batch {
		batch[i] = testPhoto(int64(100+i), int64(i), "/b/p.jpg")
	}

	stop := make(chan struct{})
	writerErr := make(chan error, 1)
	go func() {
		for {
			select {
			case <-stop:
				writerErr <- nil
				return
			default:
			}
			if err := photos.InsertAll(ctx, batch); err != nil {
				writerErr <- err
				return
			}
		}
	}()

	var failures int
	for i := 0; i < 50; i++ {
		if _, err := repo.AddMember(ctx, album.ID, 1, -1); err != nil {
			failures++
			t.Logf("AddMember() error = %v", err)
			continue
		}
		if err := repo.RemoveMember(ctx, album.ID, 1); err != nil {
			failures++
			t.Logf("RemoveMember() error = %v", err)
		}
	}
	close(stop)

	if err := <-writerErr; err != nil {
		t.Fatalf("InsertAll() error = %v", err)
	}
	if failures > 0 {
		t.Errorf("%d of 50 member edits failed while photos were being written", failures)
	}
}
