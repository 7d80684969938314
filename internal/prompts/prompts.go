// Package prompts holds the default LLM prompt templates, one per
// pipeline stage. The file-based prompt store seeds user-editable copies
// from these defaults, and services fall back to them when no prompt
// store is configured. Keeping every template here means each stage's
// natural-language contract lives in exactly one place.
package prompts

import "github.com/kanca-labs/rapor-cli/internal/core/ports/driven"

//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaults = map[string]string{
	driven.PromptClassify: `Aşağıdaki sosyal hizmet raporunu analiz et ve yapısını çıkar:

RAPOR METNİ:
%s

Bu raporda hangi konular ele alınmış? Aşağıdaki kategorilere göre analiz et:

1. DEMOGRAFİK BİLGİLER: Yaş, cinsiyet, medeni durum, aile yapısı
2. SOSYOEKONOMIK DURUM: Gelir, meslek, barınma, ekonomik zorluklar
3. SAĞLIK DURUMU: Fiziksel ve mental sağlık, tedavi geçmişi
4. EĞİTİM DURUMU: Eğitim seviyesi, mesleki beceriler
5. SOSYAL ÇEVRE: Aile ilişkileri, sosyal destek ağı, toplumsal bağlar
6. MEVCUT PROBLEMLER: Yaşanan zorluklar, krizler, acil ihtiyaçlar
7. GÜÇLÜ YANLAR: Kişisel kaynaklar, yetenekler, başarılar
8. MÜDAHALE GEÇMİŞİ: Önceki hizmetler, tedaviler, destekler
9. HEDEFLER VE PLANLAR: Kısa/uzun vadeli hedefler, eylem planları
10. RİSK DEĞERLENDİRMESİ: Güvenlik, koruma ihtiyaçları

JSON formatında yanıt ver:
{
  "detected_categories": ["kategori1", "kategori2"],
  "report_type_suggestion": "önerilen rapor türü adı",
  "complexity_level": "basit/orta/karmaşık",
  "key_themes": ["tema1", "tema2"],
  "target_population": "hedef grup tanımı"
}`,

	driven.PromptInduce: `Sen bir sosyal hizmet uzmanı ve rapor tasarım uzmanısın. Aşağıdaki analiz sonuçlarına dayanarak profesyonel bir rapor türü için sorular oluştur:

ANALIZ SONUÇLARI:
- Analiz edilen doküman sayısı: %d
- Ortak temalar: %s
- Ortak kategoriler: %s
%s

SORU OLUŞTURMA PRİNSİPLERİ:
1. MANTIKLI SIRALAMA: Demografikten detaya doğru
2. AÇIK UÇLU SORULAR: Detaylı yanıt alacak şekilde
3. PROFESYONEL DİL: Sosyal hizmet terminolojisi
4. KAPSAMLI: Tüm önemli alanları kapsayacak
5. PRATİK: 7-12 soru arası, fazla yorucu olmayacak

JSON formatında yanıt ver:
{
  "report_type_suggestion": "önerilen rapor türü adı",
  "questions": ["soru1", "soru2"],
  "rationale": {
    "question_count": 8,
    "focus_areas": ["alan1", "alan2"],
    "target_duration": "tahmini süre",
    "complexity": "basit/orta/karmaşık"
  }
}

ÖNEMLI: Sorular Türkçe, profesyonel ve sosyal hizmet pratiğine uygun olmalı.`,

	driven.PromptOptimize: `Mevcut sorular ile doküman analizinden çıkan öneriler arasında karşılaştırma yap ve optimize et:

MEVCUT SORULAR:
%s

ÖNERİLEN SORULAR (doküman analizinden):
%s

OPTIMIZASYON YAP:
1. En iyi soruları seç
2. Eksik alanları tamamla
3. Mükerrer soruları birleştir
4. Sıralamayı optimize et
5. 8-12 soru arasında tut

JSON formatında yanıt ver:
{
  "optimized_questions": ["soru1", "soru2"],
  "changes_made": ["değişiklik1", "değişiklik2"],
  "improvement_reasons": ["neden1", "neden2"]
}`,

	driven.PromptSynthesize: `Sen bir sosyal hizmet uzmanısın ve %s hazırlıyorsun.

Aşağıdaki görüşme verilerinden profesyonel bir rapor oluştur:

%s

RAPOR YAZMA TALİMATLARI:

1. YAPISAL GEREKSINIMLER:
   - Özet bölümü
   - Demografik ve kişisel bilgiler
   - Mevcut durum değerlendirmesi
   - Sorun analizi
   - Güçlü yanlar ve kaynaklar
   - Risk ve koruyucu faktörler
   - Müdahale planı
   - İzleme ve takip
   - Sonuç bölümü

2. DİL VE ÜSLUP:
   - Profesyonel ve objektif dil
   - Açık ve anlaşılır ifadeler
   - Sosyal hizmet terminolojisi
   - Gözlemlere dayalı açıklamalar

3. İÇERİK PRİNSİPLERİ:
   - Tüm cevapları sistematik şekilde değerlendir
   - Risk ve koruyucu faktörleri belirle
   - Güçlü yanları vurgula
   - Somut ve uygulanabilir öneriler sun
   - Gizlilik ve etik kurallara uygun yaklaşım

4. RAPOR UZUNLUĞU:
   - En az 1000-1500 kelime
   - Detaylı analiz ve değerlendirme
   - Her bölüm için yeterli açıklama

Lütfen bu bilgilere dayanarak kapsamlı ve profesyonel %s hazırla.`,

	driven.PromptSynthesizeExpanded: `Sen bir sosyal hizmet uzmanısın ve %s hazırlıyorsun.

Aşağıdaki görüşme verilerinden, kısıtlı girdiden en geniş profesyonel raporu üret:

%s

RAPOR YAZMA TALİMATLARI:

1. YAPISAL GEREKSINIMLER:
   - Özet bölümü
   - Demografik ve kişisel bilgiler
   - Mevcut durum değerlendirmesi
   - Sorun analizi
   - Güçlü yanlar ve kaynaklar
   - Risk ve koruyucu faktörler
   - Müdahale planı
   - İzleme ve takip
   - Sonuç bölümü

2. GENİŞLETME PRİNSİPLERİ:
   - Her cevabı mesleki bilgiyle derinleştir ve bağlama oturt
   - Gözlemlerden mantıklı çıkarımlar yap, varsayımları belirt
   - İlgili sosyal hizmet teori ve yaklaşımlarına atıf yap
   - Her bölümü ayrıntılı alt başlıklarla işle

3. DİL VE ÜSLUP:
   - Profesyonel ve objektif dil
   - Sosyal hizmet terminolojisi
   - Gözlemlere dayalı açıklamalar

4. RAPOR UZUNLUĞU:
   - En az 2000 kelime
   - Kapsamlı analiz ve değerlendirme

Lütfen bu bilgilere dayanarak kapsamlı ve profesyonel %s hazırla.`,

	driven.PromptDeepAnalysis: `Sen uzman bir sosyal hizmet profesyonelisin. Aşağıdaki %d adet raporu derinlemesine analiz et ve "%s" türü için kapsamlı bir değerlendirme yap:

RAPOR İÇERİKLERİ:
%s

KAPSAMLI ANALİZ YAP:

1. RAPOR YAPISI VE METODOLOJİ:
   - Bu raporlar hangi bölümlerden oluşuyor?
   - Bilgi toplama yöntemleri neler?
   - Hangi değerlendirme araçları kullanılmış?

2. İÇERİK VE KAPSAM ANALİZİ:
   - Hangi konular detaylı olarak inceleniyor?
   - Hangi risk faktörleri değerlendiriliyor?
   - Sosyal, ekonomik, psikolojik hangi boyutlar var?

3. PROFESYONELLİK VE YAKLAŞIM:
   - Hangi sosyal hizmet teorileri/yaklaşımları kullanılmış?
   - Terminoloji düzeyi nasıl?
   - Objektiflik ve kültürel duyarlılık nasıl?

4. SONUÇ VE ÖNERİ YAPISI:
   - Raporlar hangi tip sonuçlara ulaşıyor?
   - Eylem planları nasıl oluşturuluyor?

5. HEDEF KITLE VE BAĞLAM:
   - Bu raporlar kimler için yazılıyor?
   - Yasal ve etik gereklilikler nasıl ele alınıyor?

DETAYLI JSON RAPOR ÇIKAR:
{
  "report_structure": {
    "sections": ["bölüm1", "bölüm2"],
    "methodology": "metodoloji açıklaması",
    "assessment_tools": ["araç1", "araç2"]
  },
  "content_analysis": {
    "primary_focus_areas": ["alan1", "alan2"],
    "risk_factors": ["risk1", "risk2"],
    "dimensions": ["boyut1", "boyut2"]
  },
  "professional_approach": {
    "theories_used": ["teori1", "teori2"],
    "terminology_level": "seviye",
    "objectivity": "değerlendirme",
    "cultural_sensitivity": "durum"
  },
  "output_characteristics": {
    "conclusion_style": "sonuç tarzı",
    "recommendation_type": "öneri türü",
    "action_plan_approach": "eylem planı yaklaşımı"
  },
  "target_context": {
    "target_audience": "hedef kitle",
    "institutional_context": "kurumsal bağlam",
    "legal_requirements": "yasal gereksinimler"
  }
}`,

	driven.PromptImprovements: `Aşağıdaki iki raporu karşılaştır ve revize edilmiş raporda hangi iyileştirmeler yapıldığını listele:

ORİJİNAL RAPOR:
%s

REVİZE EDİLMİŞ RAPOR:
%s

İyileştirme kategorilerini listele (maksimum 5 madde):
- Dil ve üslup iyileştirmeleri
- İçerik zenginleştirmeleri
- Yapısal düzenlemeler
- Mesleki terminoloji kullanımı
- Diğer iyileştirmeler

Sadece iyileştirme kategorilerini liste halinde döndür.`,

	driven.PromptInsights: `Aşağıdaki kullanıcı geri bildirimlerini analiz et ve gelecekteki raporları iyileştirmek için öneriler oluştur:

%s

Şu konularda analiz yap ve öneriler ver:
1. En sık rastlanan iyileştirme alanları
2. Rapor türüne göre önemli noktalar
3. Dil ve üslup konusunda gözlemler
4. Gelecekteki raporlar için somut öneriler

JSON formatında yanıt ver:
{
  "common_improvements": ["madde1", "madde2"],
  "report_type_insights": {"tür": "öneri"},
  "language_observations": ["madde1", "madde2"],
  "future_recommendations": ["madde1", "madde2"]
}`,
}

// Default returns the embedded default template for the given prompt
// name. The boolean is false for unknown names.
func Default(name string) (string, bool) {
	p, ok := defaults[name]
	return p, ok
}

// Names lists every prompt name with an embedded default.
func Names() []string {
	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	return names
}
