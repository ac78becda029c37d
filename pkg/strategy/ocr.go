package strategy

import (
	"sort"

	"github.com/goliatone/go-adaptive/pkg/capability"
)

// TextType enumerates the text categories the OCR boundary can extract.
type TextType string

const (
	TextGeneral  TextType = "general"
	TextPrice    TextType = "price"
	TextDate     TextType = "date"
	TextNumber   TextType = "number"
	TextEmail    TextType = "email"
	TextURL      TextType = "url"
	TextAddress  TextType = "address"
	TextIDNumber TextType = "idNumber"
)

// Language enumerates recognition languages the strategy can request.
type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageSpanish  Language = "es"
	LanguageFrench   Language = "fr"
	LanguageGerman   Language = "de"
	LanguageChinese  Language = "zh"
	LanguageJapanese Language = "ja"
)

// ProcessingMode trades speed against recognition accuracy.
type ProcessingMode string

const (
	ModeFast     ProcessingMode = "fast"
	ModeStandard ProcessingMode = "standard"
	ModeAccurate ProcessingMode = "accurate"
)

// DocumentType identifies a known document category with a curated text-type
// profile.
type DocumentType string

const (
	DocumentReceipt      DocumentType = "receipt"
	DocumentInvoice      DocumentType = "invoice"
	DocumentBusinessCard DocumentType = "businessCard"
	DocumentForm         DocumentType = "form"
	DocumentGeneral      DocumentType = "general"
)

// OCRStrategy configures one recognition request. EstimatedProcessingTime is
// in seconds and strictly positive; it grows with the number of requested
// text types and with mode accuracy.
type OCRStrategy struct {
	SupportedTextTypes      []TextType     `json:"supportedTextTypes"`
	SupportedLanguages      []Language     `json:"supportedLanguages"`
	EstimatedProcessingTime float64        `json:"estimatedProcessingTime"`
	ProcessingMode          ProcessingMode `json:"processingMode"`
}

// BatchOCRStrategy sizes the logical batch parameter the external recognition
// service consumes; the core never manages OCR concurrency itself.
type BatchOCRStrategy struct {
	OCRStrategy
	BatchSize int `json:"batchSize"`
}

var modeTimeMultiplier = map[ProcessingMode]float64{
	ModeFast:     0.6,
	ModeStandard: 1.0,
	ModeAccurate: 1.6,
}

const (
	ocrBaseSeconds    = 0.4
	ocrPerTypeSeconds = 0.3
)

// documentProfiles curates text types and processing mode per document kind.
var documentProfiles = map[DocumentType]struct {
	types []TextType
	mode  ProcessingMode
}{
	DocumentReceipt:      {types: []TextType{TextPrice, TextDate, TextNumber}, mode: ModeAccurate},
	DocumentInvoice:      {types: []TextType{TextPrice, TextDate, TextNumber, TextAddress}, mode: ModeAccurate},
	DocumentBusinessCard: {types: []TextType{TextEmail, TextURL, TextNumber, TextAddress}, mode: ModeStandard},
	DocumentForm:         {types: []TextType{TextGeneral, TextDate, TextIDNumber}, mode: ModeStandard},
	DocumentGeneral:      {types: []TextType{TextGeneral}, mode: ModeStandard},
}

// SelectOCR builds a recognition strategy covering every requested text type.
// The supported set is a superset of the request: general text recognition is
// always included, and nothing requested is ever dropped.
func SelectOCR(requested []TextType, snapshot capability.Snapshot) OCRStrategy {
	types := normalizeTextTypes(requested)

	mode := ModeStandard
	switch {
	case !snapshot.VisionAvailable:
		mode = ModeFast
	case len(types) >= 4:
		mode = ModeAccurate
	}

	return OCRStrategy{
		SupportedTextTypes:      types,
		SupportedLanguages:      languagesFor(snapshot),
		EstimatedProcessingTime: estimateTime(len(types), mode),
		ProcessingMode:          mode,
	}
}

// SelectOCRForDocument resolves the curated profile for a document category.
// Unknown categories fall back to the general profile.
func SelectOCRForDocument(doc DocumentType, snapshot capability.Snapshot) OCRStrategy {
	profile, ok := documentProfiles[doc]
	if !ok {
		profile = documentProfiles[DocumentGeneral]
	}

	mode := profile.mode
	if !snapshot.VisionAvailable {
		mode = ModeFast
	}

	types := normalizeTextTypes(profile.types)
	return OCRStrategy{
		SupportedTextTypes:      types,
		SupportedLanguages:      languagesFor(snapshot),
		EstimatedProcessingTime: estimateTime(len(types), mode),
		ProcessingMode:          mode,
	}
}

// deviceBatchSize caps how many images one logical OCR batch carries per form
// factor.
var deviceBatchSize = map[capability.DeviceType]int{
	capability.DeviceDesktop: 8,
	capability.DevicePad:     4,
	capability.DevicePhone:   2,
	capability.DeviceTV:      2,
	capability.DeviceWatch:   1,
}

// SelectBatchOCR sizes a logical batch for multi-image recognition. The batch
// never exceeds the image count and is always at least one.
func SelectBatchOCR(imageCount int, snapshot capability.Snapshot) BatchOCRStrategy {
	size, ok := deviceBatchSize[snapshot.Device]
	if !ok {
		size = 1
	}
	if imageCount > 0 && size > imageCount {
		size = imageCount
	}
	if size < 1 {
		size = 1
	}

	return BatchOCRStrategy{
		OCRStrategy: SelectOCR([]TextType{TextGeneral}, snapshot),
		BatchSize:   size,
	}
}

// normalizeTextTypes dedupes the request, guarantees general recognition, and
// sorts for deterministic output.
func normalizeTextTypes(requested []TextType) []TextType {
	seen := map[TextType]struct{}{TextGeneral: {}}
	for _, t := range requested {
		if t == "" {
			continue
		}
		seen[t] = struct{}{}
	}

	out := make([]TextType, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func languagesFor(snapshot capability.Snapshot) []Language {
	if !snapshot.VisionAvailable {
		return []Language{LanguageEnglish}
	}
	return []Language{
		LanguageEnglish, LanguageSpanish, LanguageFrench,
		LanguageGerman, LanguageChinese, LanguageJapanese,
	}
}

func estimateTime(typeCount int, mode ProcessingMode) float64 {
	if typeCount < 1 {
		typeCount = 1
	}
	multiplier, ok := modeTimeMultiplier[mode]
	if !ok {
		multiplier = 1.0
	}
	return (ocrBaseSeconds + ocrPerTypeSeconds*float64(typeCount)) * multiplier
}
