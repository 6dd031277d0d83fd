package telegram

import (
	"sync"
	"time"
)

// getSession sessiya nusxasini o'qish (bo'lmasa idle)
func (h *BotHandler) getSession(userID int64) userSession {
	h.sessionMu.RLock()
	defer h.sessionMu.RUnlock()
	if sess, ok := h.sessions[userID]; ok {
		return *sess
	}
	return userSession{Flow: flowIdle}
}

// setSession sessiyani yozish
func (h *BotHandler) setSession(userID int64, flow flowState, warehouse string) {
	h.sessionMu.Lock()
	defer h.sessionMu.Unlock()
	h.sessions[userID] = &userSession{
		Flow:       flow,
		Warehouse:  warehouse,
		LastUpdate: time.Now(),
	}
}

// resetSession sessiyani idle ga qaytarish (warehouse ham tozalanadi)
func (h *BotHandler) resetSession(userID int64) {
	h.sessionMu.Lock()
	defer h.sessionMu.Unlock()
	delete(h.sessions, userID)
}

// touchSession parse xatosida state saqlanadi, faqat vaqt yangilanadi
func (h *BotHandler) touchSession(userID int64) {
	h.sessionMu.Lock()
	defer h.sessionMu.Unlock()
	if sess, ok := h.sessions[userID]; ok {
		sess.LastUpdate = time.Now()
	}
}

// userLock foydalanuvchiga tegishli mutexni olish
func (h *BotHandler) userLock(userID int64) *sync.Mutex {
	h.userLockMu.Lock()
	defer h.userLockMu.Unlock()
	if mu, ok := h.userLocks[userID]; ok {
		return mu
	}
	mu := &sync.Mutex{}
	h.userLocks[userID] = mu
	return mu
}

// withUserLock bitta userning xabarlarini ketma-ket qayta ishlash
func (h *BotHandler) withUserLock(userID int64, fn func()) {
	mu := h.userLock(userID)
	mu.Lock()
	defer mu.Unlock()
	fn()
}
