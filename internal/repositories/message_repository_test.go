package repositories

import (
	"testing"
	"time"

	"portalchat/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessage(sender, receiver, content string, at time.Time) *models.Message {
	message := &models.Message{
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
	}
	message.CreatedAt = at
	return message
}

func TestSaveMessageAssignsID(t *testing.T) {
	repo := NewMessageRepository(newTestDB(t))

	before := time.Now()
	saved, errs := repo.SaveMessage(newMessage("admin-1", "09876543", "Hello", time.Now()))
	require.Empty(t, errs)
	require.NotNil(t, saved)
	assert.NotZero(t, saved.ID)
	assert.False(t, saved.CreatedAt.Before(before))
}

func TestGetThreadMatchesEitherDirection(t *testing.T) {
	repo := NewMessageRepository(newTestDB(t))

	base := time.Now()
	_, errs := repo.SaveMessage(newMessage("admin-1", "09876543", "Hello", base))
	require.Empty(t, errs)
	_, errs = repo.SaveMessage(newMessage("09876543", "admin-1", "Hi back", base.Add(time.Second)))
	require.Empty(t, errs)
	// Unrelated traffic must not leak into the thread.
	_, errs = repo.SaveMessage(newMessage("admin-1", "11112222", "Other thread", base.Add(2*time.Second)))
	require.Empty(t, errs)

	thread, errs := repo.GetThread("admin-1", "09876543", 1, 10)
	require.Empty(t, errs)
	require.Len(t, thread.Messages, 2)
	assert.EqualValues(t, 2, thread.Total)
	assert.Equal(t, "Hello", thread.Messages[0].Content)
	assert.Equal(t, "admin-1", thread.Messages[0].SenderID)
	assert.Equal(t, "Hi back", thread.Messages[1].Content)
	assert.Equal(t, "09876543", thread.Messages[1].SenderID)

	// The thread is symmetric: asking from the other side gives the
	// same sequence.
	mirrored, errs := repo.GetThread("09876543", "admin-1", 1, 10)
	require.Empty(t, errs)
	require.Len(t, mirrored.Messages, 2)
	assert.Equal(t, thread.Messages[0].ID, mirrored.Messages[0].ID)
	assert.Equal(t, thread.Messages[1].ID, mirrored.Messages[1].ID)
}

func TestGetThreadAscendingUnderInterleavedDirections(t *testing.T) {
	repo := NewMessageRepository(newTestDB(t))

	base := time.Now()
	contents := []string{"one", "two", "three", "four", "five"}
	for i, content := range contents {
		sender, receiver := "A", "B"
		if i%2 == 1 {
			sender, receiver = "B", "A"
		}
		_, errs := repo.SaveMessage(newMessage(sender, receiver, content, base.Add(time.Duration(i)*time.Millisecond)))
		require.Empty(t, errs)
	}

	thread, errs := repo.GetThread("A", "B", 1, 50)
	require.Empty(t, errs)
	require.Len(t, thread.Messages, len(contents))
	for i := 1; i < len(thread.Messages); i++ {
		assert.False(t, thread.Messages[i].CreatedAt.Before(thread.Messages[i-1].CreatedAt),
			"messages must be in non-decreasing timestamp order")
	}
	for i, content := range contents {
		assert.Equal(t, content, thread.Messages[i].Content)
	}
}

func TestGetThreadPagination(t *testing.T) {
	repo := NewMessageRepository(newTestDB(t))

	base := time.Now()
	for i := 0; i < 25; i++ {
		_, errs := repo.SaveMessage(newMessage("A", "B", "msg", base.Add(time.Duration(i)*time.Millisecond)))
		require.Empty(t, errs)
	}

	page, errs := repo.GetThread("A", "B", 2, 10)
	require.Empty(t, errs)
	assert.Len(t, page.Messages, 10)
	assert.EqualValues(t, 25, page.Total)
	assert.Equal(t, 2, page.Page)

	last, errs := repo.GetThread("A", "B", 3, 10)
	require.Empty(t, errs)
	assert.Len(t, last.Messages, 5)
}
