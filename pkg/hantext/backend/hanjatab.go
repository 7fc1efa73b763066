package backend

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// HanjaTab converts CJK ideographs to their Hangul readings via a
// lookup table. A built-in table of common characters is always
// present; a YAML file can extend or override it.
type HanjaTab struct {
	readings map[rune]rune
}

func openHanjaTab(path string) (Backend, error) {
	readings := make(map[rune]rune, len(defaultHanjaReadings))
	for h, r := range defaultHanjaReadings {
		readings[h] = r
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var table map[string]string
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parse hanja table: %w", err)
		}
		for h, r := range table {
			hr := []rune(h)
			rr := []rune(r)
			if len(hr) != 1 || len(rr) != 1 {
				return nil, fmt.Errorf("hanja table entry %q: %q must map one character to one character", h, r)
			}
			readings[hr[0]] = rr[0]
		}
	}

	if len(readings) == 0 {
		return nil, fmt.Errorf("hanja table is empty")
	}
	return &HanjaTab{readings: readings}, nil
}

// NewHanjaTab builds a converter from an explicit reading table.
func NewHanjaTab(readings map[rune]rune) *HanjaTab {
	return &HanjaTab{readings: readings}
}

func (h *HanjaTab) Name() string { return "hanjatab" }

func (h *HanjaTab) Capabilities() []Capability {
	return []Capability{CapHanjaConvert}
}

// ToHangul replaces every ideograph that has a known reading.
// Characters without a reading pass through unchanged.
func (h *HanjaTab) ToHangul(text string) (string, error) {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if reading, ok := h.readings[r]; ok {
			b.WriteRune(reading)
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// defaultHanjaReadings covers the hanja most common in mixed-script
// Korean prose: numerals, dates, geography, education, government.
var defaultHanjaReadings = map[rune]rune{
	'一': '일', '二': '이', '三': '삼', '四': '사', '五': '오',
	'六': '육', '七': '칠', '八': '팔', '九': '구', '十': '십',
	'百': '백', '千': '천', '萬': '만',
	'年': '년', '月': '월', '日': '일', '時': '시', '分': '분',
	'人': '인', '大': '대', '小': '소', '中': '중', '上': '상',
	'下': '하', '前': '전', '後': '후', '內': '내', '外': '외',
	'東': '동', '西': '서', '南': '남', '北': '북',
	'韓': '한', '國': '국', '民': '민', '王': '왕',
	'山': '산', '江': '강', '川': '천', '海': '해',
	'水': '수', '火': '화', '木': '목', '金': '금', '土': '토',
	'天': '천', '地': '지', '文': '문', '語': '어', '學': '학',
	'校': '교', '敎': '교', '生': '생', '先': '선',
	'男': '남', '女': '여', '子': '자', '父': '부', '母': '모',
	'心': '심', '手': '수', '足': '족', '口': '구', '目': '목',
	'車': '차', '門': '문', '電': '전', '氣': '기',
	'食': '식', '事': '사', '物': '물', '名': '명',
	'安': '안', '寧': '녕', '平': '평', '和': '화',
	'新': '신', '古': '고', '長': '장', '市': '시',
	'道': '도', '政': '정', '府': '부', '會': '회', '社': '사',
	'經': '경', '濟': '제', '法': '법', '軍': '군',
}
