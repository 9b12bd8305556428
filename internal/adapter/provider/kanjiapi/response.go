package kanjiapi

import "github.com/heartmarshall/kanjilens-backend/internal/domain"

// apiKanji is the body of GET /v1/kanji/{character}.
type apiKanji struct {
	Kanji        string   `json:"kanji"`
	Grade        *int     `json:"grade"`
	StrokeCount  int      `json:"stroke_count"`
	Meanings     []string `json:"meanings"`
	KunReadings  []string `json:"kun_readings"`
	OnReadings   []string `json:"on_readings"`
	NameReadings []string `json:"name_readings"`
	JLPT         *int     `json:"jlpt"`
	Unicode      string   `json:"unicode"`
	HeisigEN     *string  `json:"heisig_en"`
}

func (a apiKanji) toDomain() *domain.KanjiInfo {
	info := &domain.KanjiInfo{
		Kanji:        a.Kanji,
		Meanings:     nonNil(a.Meanings),
		OnReadings:   nonNil(a.OnReadings),
		KunReadings:  nonNil(a.KunReadings),
		NameReadings: nonNil(a.NameReadings),
		Grade:        a.Grade,
		JLPT:         a.JLPT,
		StrokeCount:  a.StrokeCount,
		Unicode:      a.Unicode,
	}
	if a.HeisigEN != nil {
		info.HeisigEN = *a.HeisigEN
	}
	return info
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
