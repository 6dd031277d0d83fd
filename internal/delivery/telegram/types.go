package telegram

import "time"

// flowState foydalanuvchi sessiyasi qaysi bosqichda ekanini bildiradi
type flowState int

const (
	flowIdle flowState = iota
	flowAddingWarehouse
	flowAddingProduct
	flowCheckingWarehouse
	flowCheckingProduct
	flowListingWarehouse
	flowRemovingWarehouse
	flowRemovingProduct
)

// Amallar callback data va sessiya uchun qisqa tokenlar
const (
	actionAdd    = "add"
	actionCheck  = "check"
	actionList   = "list"
	actionRemove = "remove"
)

// userSession bitta foydalanuvchining suhbat holati.
// Flow va Warehouse har bir amal yakunida idle ga qaytariladi.
type userSession struct {
	Flow       flowState
	Warehouse  string
	LastUpdate time.Time
}
