package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyDownload         = "download"
	KeyDirectoryMissing = "directory_missing"
	KeySaveTo           = "save_to"
	KeyFormat           = "format"
	KeyVideo            = "video"
	KeyAudio            = "audio"
	KeyUpTo             = "up_to"
	KeyHDR              = "hdr"
	KeyPleaseWait       = "please_wait"
	KeyCancel           = "cancel"
	KeyProgressTitle    = "progress_title"
	KeyInfo             = "info"
	KeyOK               = "ok"
	KeyOpenFolder       = "open_folder"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyEnterURLs        = "enter_urls"
	KeyErrorOpenFolder  = "error_open_folder"
	KeyErrorStartRun    = "error_start_run"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if text, found := l.texts[l.currentLanguage][key]; found {
		return text
	}

	// Fallback to English
	if text, found := l.texts["en"][key]; found {
		return text
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "youtube-dl UI",
		KeyDownload:         "download",
		KeyDirectoryMissing: "directory does not exist",
		KeySaveTo:           "Save to",
		KeyFormat:           "Format",
		KeyVideo:            "Video",
		KeyAudio:            "Audio",
		KeyUpTo:             "Up to",
		KeyHDR:              "HDR",
		KeyPleaseWait:       "please wait...",
		KeyCancel:           "Cancel",
		KeyProgressTitle:    "Progress",
		KeyInfo:             "Info",
		KeyOK:               "OK",
		KeyOpenFolder:       "Open folder",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyEnterURLs:        "One URL per line",
		KeyErrorOpenFolder:  "Could not open folder",
		KeyErrorStartRun:    "Could not start download",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "youtube-dl UI",
		KeyDownload:         "скачать",
		KeyDirectoryMissing: "папка не существует",
		KeySaveTo:           "Сохранить в",
		KeyFormat:           "Формат",
		KeyVideo:            "Видео",
		KeyAudio:            "Аудио",
		KeyUpTo:             "До",
		KeyHDR:              "HDR",
		KeyPleaseWait:       "пожалуйста, подождите...",
		KeyCancel:           "Отмена",
		KeyProgressTitle:    "Прогресс",
		KeyInfo:             "Информация",
		KeyOK:               "ОК",
		KeyOpenFolder:       "Открыть папку",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyEnterURLs:        "По одному URL на строку",
		KeyErrorOpenFolder:  "Не удалось открыть папку",
		KeyErrorStartRun:    "Не удалось начать загрузку",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "youtube-dl UI",
		KeyDownload:         "baixar",
		KeyDirectoryMissing: "o diretório não existe",
		KeySaveTo:           "Salvar em",
		KeyFormat:           "Formato",
		KeyVideo:            "Vídeo",
		KeyAudio:            "Áudio",
		KeyUpTo:             "Até",
		KeyHDR:              "HDR",
		KeyPleaseWait:       "aguarde...",
		KeyCancel:           "Cancelar",
		KeyProgressTitle:    "Progresso",
		KeyInfo:             "Informação",
		KeyOK:               "OK",
		KeyOpenFolder:       "Abrir pasta",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyEnterURLs:        "Um URL por linha",
		KeyErrorOpenFolder:  "Não foi possível abrir a pasta",
		KeyErrorStartRun:    "Não foi possível iniciar o download",
	}
}
