package services

import (
	"time"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
)

// builtinReportTypes returns the four report types shipped with the
// application. Returned fresh on each call so callers can mutate the
// slices without corrupting shared state.
func builtinReportTypes() []domain.ReportType {
	now := time.Now()
	return []domain.ReportType{
		{
			ID:          "sosyal_inceleme",
			Name:        "Sosyal İnceleme Raporu",
			Description: "Aile ve çevre koşullarının değerlendirildiği kapsamlı rapor",
			Questions: []string{
				"Merhaba! Size Sosyal İnceleme Raporu konusunda yardımcı olacağım. Öncelikle kişi hakkında temel bilgileri alabilir miyim? (Ad, yaş, medeni durum, aile yapısı)",
				"Ailenin sosyoekonomik durumu nasıl? (Gelir, meslek, ekonomik sıkıntılar var mı?)",
				"Konut koşulları nasıl? (Ev tipi, temizlik, uygunluk, güvenlik)",
				"Aile üyelerinin sağlık durumu hakkında bilgi verebilir misiniz?",
				"Eğitim durumları nasıl? (Okul, kurs, mesleki gelişim)",
				"Sosyal çevre ve komşuluk ilişkileri nasıl?",
				"Şu anda yaşanan temel sorunlar nelerdir?",
				"Daha önce herhangi bir sosyal hizmet desteği alındı mı?",
				"Ailenin güçlü yanları ve yetenekleri nelerdir?",
				"Size nasıl bir destek sağlanmasını önerirsiniz?",
			},
			CreatedAt: now,
		},
		{
			ID:          "ilk_gorusme",
			Name:        "İlk Görüşme Raporu",
			Description: "Başvuru sahibi ile yapılan ilk görüşmenin detayları",
			Questions: []string{
				"İlk Görüşme Raporu için birlikte çalışalım. Görüşme tarihi ve yeri nedir?",
				"Görüşme yaklaşık ne kadar sürdü?",
				"Kişi neden başvuruda bulundu? Ana ihtiyacı nedir?",
				"Kişinin bu durumdan beklentileri nelerdir?",
				"Görüşme sırasında kişinin genel davranışları, ruh hali nasıldı?",
				"Kişinin iletişim tarzı ve işbirliği düzeyi nasıl?",
				"Ailevi ve sosyal durumu hakkında gözlemleriniz neler?",
				"İlk değerlendirmenize göre öncelikli ihtiyaçlar neler?",
				"Sonraki görüşme için planınız nedir?",
				"Acil müdahale gerektiren bir durum var mı?",
			},
			CreatedAt: now,
		},
		{
			ID:          "aile_danismanligi",
			Name:        "Aile Danışmanlığı Raporu",
			Description: "Aile danışmanlığı sürecinin değerlendirildiği rapor",
			Questions: []string{
				"Aile Danışmanlığı Raporu hazırlayalım. Aile yapısı ve üyeler hakkında bilgi verir misiniz?",
				"Ailenin karşılaştığı temel problem nedir? Ne zaman başladı?",
				"Aile üyeleri arasındaki ilişkiler ve roller nasıl?",
				"Aile içi iletişim nasıl? Çatışma alanları var mı?",
				"Ailenin güçlü yanları ve başarıyla üstesinden geldiği durumlar neler?",
				"Risk faktörleri nelerdir? (Şiddet, madde kullanımı, ekonomik zorluk vs.)",
				"Daha önce danışmanlık alındı mı? Sonuçları nasıldı?",
				"Ailenin değişim motivasyonu nasıl?",
				"Kısa vadeli hedefler neler olmalı?",
				"Uzun vadeli hedefler ve beklentiler nelerdir?",
			},
			CreatedAt: now,
		},
		{
			ID:          "cocuk_koruma",
			Name:        "Çocuk Koruma Raporu",
			Description: "Çocuğun güvenliği ve refahı ile ilgili değerlendirme raporu",
			Questions: []string{
				"Çocuk Koruma Raporu için değerlendirme yapalım. Çocuk hakkında temel bilgiler nelerdir? (Yaş, cinsiyet, okul durumu)",
				"Çocuğun bakım verenleri kimlerdir? Aile yapısı nasıl?",
				"Çocuğa yönelik risk faktörleri nelerdir?",
				"Çocuğun kendi ifadesi alındı mı? Neler söyledi?",
				"Çocuğun fiziksel durumu nasıl? (Beslenme, temizlik, sağlık)",
				"Duygusal ve davranışsal durumu nasıl? (Korku, kaygı, uyum)",
				"Okul durumu ve akademik performansı nasıl?",
				"Çocuğu koruyan faktörler nelerdir? (Destekçi yetişkinler, sosyal ağ)",
				"Acil koruyucu müdahale gerekli mi?",
				"Çocuğun güvenliği için önerileriniz nelerdir?",
			},
			CreatedAt: now,
		},
	}
}
