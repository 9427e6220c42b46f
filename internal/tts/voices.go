package tts

const defaultLanguage = "en-US"

// voiceTable maps a language tag to the Cloud TTS voice used for it.
// Static by design; unknown tags fall back to the en-US companion voice.
var voiceTable = map[string]string{
	"en-US": "en-US-Journey-F",
	"en-GB": "en-GB-Journey-F",
	"es-ES": "es-ES-Neural2-A",
	"es-US": "es-US-Neural2-A",
	"fr-FR": "fr-FR-Neural2-A",
	"de-DE": "de-DE-Neural2-B",
	"it-IT": "it-IT-Neural2-A",
	"pt-BR": "pt-BR-Neural2-A",
	"hi-IN": "hi-IN-Neural2-A",
	"ja-JP": "ja-JP-Neural2-B",
	"ko-KR": "ko-KR-Neural2-A",
}

// voiceFor resolves a language tag to a (languageCode, voiceName) pair.
func voiceFor(language string) (string, string) {
	if name, ok := voiceTable[language]; ok {
		return language, name
	}
	return defaultLanguage, voiceTable[defaultLanguage]
}
