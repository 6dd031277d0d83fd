package telegram

import (
	"context"
	"log"
	"time"
)

const sessionTimeout = 2 * time.Hour

// cleanupSessions - eski sessiyalarni tozalash (memory leak oldini olish).
// O'chirilgan sessiya keyingi xabarda idle holatda qayta yaratiladi.
func (h *BotHandler) cleanupSessions(ctx context.Context) {
	ticker := time.NewTicker(15 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()

			h.sessionMu.Lock()
			for userID, sess := range h.sessions {
				if now.Sub(sess.LastUpdate) > sessionTimeout {
					delete(h.sessions, userID)
					log.Printf("♻️ Sessiya tozalandi: userID=%d (timeout)", userID)
				}
			}
			h.sessionMu.Unlock()
		}
	}
}
