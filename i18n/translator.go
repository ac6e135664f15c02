package i18n

import "sync"

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "asset_type_mismatch":
			return "アセットの型が一致しません"
		case "missing_required_field":
			return "必須フィールドが不足しています"
		case "unknown_variant_case":
			return "未知のバリアントです"
		case "wire_tag_mismatch":
			return "ワイヤタグが一致しません"
		case "duplicate_key":
			return "キーが重複しています"
		case "integer_overflow":
			return "整数がオーバーフローしました"
		case "utf8":
			return "UTF-8 として不正な文字列です"
		case "truncated_input":
			return "入力が途中で終わっています"
		case "recursion_limit":
			return "入れ子の深さが上限を超えました"
		case "unknown_record_name":
			return "未登録のレコードです"
		case "descriptor_build_error":
			return "ディスクリプタの構築に失敗しました"
		}
	default: // "en"
		switch code {
		case "asset_type_mismatch":
			return "asset type mismatch"
		case "missing_required_field":
			return "required field missing"
		case "unknown_variant_case":
			return "unknown variant case"
		case "wire_tag_mismatch":
			return "wire tag mismatch"
		case "duplicate_key":
			return "duplicate mapping key"
		case "integer_overflow":
			return "integer does not fit the declared type"
		case "utf8":
			return "invalid utf-8 string"
		case "truncated_input":
			return "input ended early"
		case "recursion_limit":
			return "nesting depth limit exceeded"
		case "record_type_mismatch":
			return "nested record class mismatch"
		case "malformed_input":
			return "malformed input"
		case "unknown_record_name":
			return "record not registered"
		case "descriptor_build_error":
			return "descriptor build failed"
		case "encode_error":
			return "cannot encode value"
		}
	}
	return ""
}

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
