package admin

import (
	"fmt"
	"sync"

	"github.com/care2you/care2you-api/models"
	"github.com/care2you/care2you-api/services"
	"gorm.io/gorm"
)

// Operation is one of the two batch actions the admin panel offers.
type Operation string

const (
	OpToggleStatus Operation = "toggle-status"
	OpDelete       Operation = "delete"
)

// BulkActioner applies one operation to a selection of user records. Rows
// are resolved independently and concurrently; a per-row failure never rolls
// back its siblings.
type BulkActioner struct {
	UserStore services.UserStoreInterface
	DB        *gorm.DB
}

// ApplyBatch fans out the operation across all selected ids and returns one
// result per id. A nil map value means the row succeeded. The caller clears
// its selection once the whole batch has resolved, regardless of how many
// rows failed.
func (b *BulkActioner) ApplyBatch(userIDs []string, op Operation) map[string]error {
	results := make(map[string]error, len(userIDs))

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, userID := range userIDs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			err := b.applyOne(id, op)
			mu.Lock()
			results[id] = err
			mu.Unlock()
		}(userID)
	}
	wg.Wait()

	return results
}

func (b *BulkActioner) applyOne(userID string, op Operation) error {
	switch op {
	case OpToggleStatus:
		return b.toggleStatus(userID)
	case OpDelete:
		return b.deleteUser(userID)
	}
	return fmt.Errorf("unknown bulk operation: %s", op)
}

// toggleStatus flips the user's status between active and inactive. This is
// a read-modify-write against the user store with no version check; a race
// with a concurrent self-service update is possible and unguarded.
func (b *BulkActioner) toggleStatus(userID string) error {
	user, err := b.UserStore.GetUser(userID)
	if err != nil {
		return err
	}

	newStatus := models.StatusActive
	if user.Status == models.StatusActive {
		newStatus = models.StatusInactive
	}

	_, err = b.UserStore.UpdateMetadata(userID, map[string]interface{}{
		"status": newStatus,
	})
	return err
}

// deleteUser removes the user record and, for service providers, cascades
// to their listings. The two deletes are not atomic with each other.
func (b *BulkActioner) deleteUser(userID string) error {
	user, err := b.UserStore.GetUser(userID)
	if err != nil {
		return err
	}

	if err := b.UserStore.DeleteUser(userID); err != nil {
		return err
	}

	if user.Role == models.RoleService && b.DB != nil {
		if err := b.DB.Where("user_id = ?", userID).Delete(&models.ServiceListing{}).Error; err != nil {
			return fmt.Errorf("user deleted but listing cascade failed: %w", err)
		}
	}

	return nil
}
