package telegram

import (
	"fmt"
	"strings"

	"github.com/yourusername/telegram-warehouse-bot/internal/domain/entity"
)

// Xabarlar katalogi. Har bir xabar uz/ru tillarida.

func unitSuffix(lang string) string {
	return t(lang, "dona", "шт.")
}

func msgWelcome(lang string) string {
	return t(lang,
		"🎯 *Sklad boshqaruv tizimiga xush kelibsiz!*\n\nAmalni tanlang:",
		"🎯 *Добро пожаловать в систему управления складами!*\n\nВыберите действие:")
}

func msgChooseWarehouse(lang, action string) string {
	switch action {
	case actionAdd:
		return t(lang, "🏭 *Qo'shish uchun skladni tanlang:*", "🏭 *Выберите склад для добавления:*")
	case actionCheck:
		return t(lang, "🏭 *Tekshirish uchun skladni tanlang:*", "🏭 *Выберите склад для проверки:*")
	case actionList:
		return t(lang, "🏭 *Qoldiqlarni ko'rish uchun skladni tanlang:*", "🏭 *Выберите склад для просмотра остатков:*")
	default:
		return t(lang, "🏭 *Spisaniye uchun skladni tanlang:*", "🏭 *Выберите склад для списания:*")
	}
}

func msgAddPrompt(lang, warehouse string) string {
	return t(lang,
		fmt.Sprintf("📥 *Skladga mahsulot qo'shish:* %s\n\nMahsulot va miqdorni yuboring:\n*Misol:* \"Sut 10\" yoki \"Sut - 10\"", warehouse),
		fmt.Sprintf("📥 *Добавление товара на склад:* %s\n\nОтправьте товар и количество:\n*Пример:* \"Молоко 10\" или \"Молоко - 10\"", warehouse))
}

func msgCheckPrompt(lang, warehouse string) string {
	return t(lang,
		fmt.Sprintf("🔍 *Skladda mahsulotni tekshirish:* %s\n\nTekshirish uchun mahsulot nomini yuboring:", warehouse),
		fmt.Sprintf("🔍 *Проверка товара на складе:* %s\n\nОтправьте название товара для проверки:", warehouse))
}

func msgRemovePrompt(lang, warehouse string, products []entity.Product) string {
	list := formatList(lang, products)
	return t(lang,
		fmt.Sprintf("📤 *Skladdan spisaniye:* %s\n\n📊 *Joriy qoldiqlar:*\n%s\n\nSpisaniye uchun mahsulot va miqdorni yuboring:\n*Misol:* \"Sut 3\" yoki \"Sut - 3\"", warehouse, list),
		fmt.Sprintf("📤 *Списание товара со склада:* %s\n\n📊 *Текущие остатки:*\n%s\n\nОтправьте товар и количество для списания:\n*Пример:* \"Молоко 3\" или \"Молоко - 3\"", warehouse, list))
}

func msgEmptyWarehouse(lang, warehouse string) string {
	return t(lang,
		fmt.Sprintf("📤 *Skladdan spisaniye:* %s\n\n📭 *Skladda hozircha mahsulot yo'q!*\n\nAvval skladga mahsulot qo'shing.", warehouse),
		fmt.Sprintf("📤 *Списание товара со склада:* %s\n\n📭 *На складе пока нет товаров!*\n\nСначала добавьте товары на склад.", warehouse))
}

func msgStockList(lang, warehouse string, products []entity.Product) string {
	return t(lang,
		fmt.Sprintf("📊 *%s skladidagi qoldiqlar:*\n\n%s", warehouse, formatList(lang, products)),
		fmt.Sprintf("📊 *Остатки на складе %s:*\n\n%s", warehouse, formatList(lang, products)))
}

func msgProductUpdated(lang, product, warehouse string, quantity int) string {
	return t(lang,
		fmt.Sprintf("✅ *Yangilandi!*\nMahsulot: %s\nSklad: %s\nJoriy miqdor: *%d dona*", product, warehouse, quantity),
		fmt.Sprintf("✅ *Обновлено!*\nТовар: %s\nСклад: %s\nТекущее количество: *%d шт.*", product, warehouse, quantity))
}

func msgProductChecked(lang, product, warehouse string, quantity int) string {
	return t(lang,
		fmt.Sprintf("🔍 *Mahsulot haqida ma'lumot:*\nMahsulot: %s\nSklad: %s\nMiqdor: *%d dona*", product, warehouse, quantity),
		fmt.Sprintf("🔍 *Информация о товаре:*\nТовар: %s\nСклад: %s\nКоличество: *%d шт.*", product, warehouse, quantity))
}

func msgProductNotFound(lang, product, warehouse string) string {
	return t(lang,
		fmt.Sprintf("❌ \"*%s*\" mahsuloti %s skladida topilmadi", product, warehouse),
		fmt.Sprintf("❌ Товар \"*%s*\" не найден на складе %s", product, warehouse))
}

func msgProductNotFoundRemove(lang, product, warehouse string, similar []entity.Product) string {
	var b strings.Builder
	b.WriteString(t(lang,
		fmt.Sprintf("❌ *Mahsulot topilmadi!*\n\"*%s*\" mahsuloti %s skladida yo'q\n\n", product, warehouse),
		fmt.Sprintf("❌ *Товар не найден!*\nТовар \"*%s*\" отсутствует на складе %s\n\n", product, warehouse)))

	if len(similar) > 0 {
		b.WriteString(t(lang, "Balki quyidagilarni nazarda tutgandirsiz:\n", "Возможно вы имели в виду:\n"))
		for _, p := range similar {
			b.WriteString("• " + p.Name + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(t(lang,
		"Nom to'g'riligini tekshiring yoki boshqa mahsulot tanlang.",
		"Проверьте правильность названия или выберите другой товар."))
	return b.String()
}

func msgRemovedPartial(lang, product, warehouse string, removed, remaining int) string {
	return t(lang,
		fmt.Sprintf("📤 *Spisaniye bajarildi!*\nMahsulot: %s\nSklad: %s\nSpisaniye: %d dona\nQoldiq: *%d dona*", product, warehouse, removed, remaining),
		fmt.Sprintf("📤 *Списание выполнено!*\nТовар: %s\nСклад: %s\nСписано: %d шт.\nОстаток: *%d шт.*", product, warehouse, removed, remaining))
}

func msgRemovedComplete(lang, product, warehouse string) string {
	return t(lang,
		fmt.Sprintf("✅ *Mahsulot to'liq spisaniye qilindi!*\nMahsulot: %s\nSklad: %s\nMahsulot skladdan o'chirildi.", product, warehouse),
		fmt.Sprintf("✅ *Товар полностью списан!*\nТовар: %s\nСклад: %s\nТовар удален со склада.", product, warehouse))
}

func msgCurrentStock(lang, product string, quantity, removing int) string {
	return t(lang,
		fmt.Sprintf("📦 *Joriy qoldiq:* %s — *%d dona*\n%d dona spisaniye qilinmoqda...", product, quantity, removing),
		fmt.Sprintf("📦 *Текущий остаток:* %s — *%d шт.*\nСписание %d шт...", product, quantity, removing))
}

func msgInsufficientStock(lang, product string, have, want int) string {
	return t(lang,
		fmt.Sprintf("❌ *Mahsulot yetarli emas!*\nMahsulot: %s\nSkladda: *%d dona*\nSpisaniye so'raldi: *%d dona*\n\nSpisaniye bajarilmadi.", product, have, want),
		fmt.Sprintf("❌ *Недостаточно товара!*\nТовар: %s\nНа складе: *%d шт.*\nПытаетесь списать: *%d шт.*\n\nСписание невозможно.", product, have, want))
}

func msgParseError(lang string) string {
	return t(lang,
		"❌ *Noto'g'ri format!*\nQuyidagicha yozing: *<Nomi> <Miqdori>*\n*Misol:* \"Sut 10\" yoki \"Sut - 10\"",
		"❌ *Неверный формат!*\nИспользуйте: *<Название> <Количество>*\n*Пример:* \"Молоко 10\" или \"Молоко - 10\"")
}

func msgStoreError(lang string) string {
	return t(lang,
		"⚠️ *Saqlash tizimi javob bermadi.*\nBiroz kutib, qaytadan urinib ko'ring.",
		"⚠️ *Хранилище не отвечает.*\nПодождите немного и попробуйте ещё раз.")
}

func msgIdleMenu(lang string) string {
	return t(lang,
		"🎯 *Klaviaturadan amalni tanlang:*\n\n📥 Mahsulot qo'shish\n🔍 Mahsulotni tekshirish\n📋 Qoldiqlarni ko'rish\n📤 Mahsulot spisaniye",
		"🎯 *Выберите действие на клавиатуре:*\n\n📥 Добавить товар\n🔍 Проверить товар\n📋 Показать остатки\n📤 Списать товар")
}

// formatList sklad ro'yxatini chiqarish
func formatList(lang string, products []entity.Product) string {
	if len(products) == 0 {
		return t(lang, "📭 Skladda hozircha bo'sh.", "📭 На складе пока пусто.")
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("• %s — %d %s", p.Name, p.Quantity, unitSuffix(lang)))
	}
	return strings.Join(lines, "\n")
}
