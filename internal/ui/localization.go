package ui

import (
	"fmt"

	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"
)

// languageCodes lists translated languages in languageMatcher order
var languageCodes = []string{"en", "ru", "pt"}

var languageMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Russian,
	language.Portuguese,
})

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyEnterPassword      = "enter_password"
	KeyPassword           = "password"
	KeyLogin              = "login"
	KeyIncorrectPassword  = "incorrect_password"
	KeyEnterVideoURL      = "enter_video_url"
	KeyLabelsPlaceholder  = "labels_placeholder"
	KeyAddVideo           = "add_video"
	KeyNoVideos           = "no_videos"
	KeyAddedOn            = "added_on"
	KeyRatingStars        = "rating_stars"
	KeyOpenInBrowser      = "open_in_browser"
	KeyUpdateRating       = "update_rating"
	KeyCopyURL            = "copy_url"
	KeyDelete             = "delete"
	KeyCancel             = "cancel"
	KeyUpdate             = "update"
	KeyRatingPrompt       = "rating_prompt"
	KeyInvalidRating      = "invalid_rating"
	KeyCopied             = "copied"
	KeyURLCopied          = "url_copied"
	KeyError              = "error"
	KeyInfo               = "info"
	KeySuccess            = "success"
	KeyEnterValidURL      = "enter_valid_url"
	KeyEnterAtLeastOneURL = "enter_at_least_one_url"
	KeyAllDuplicates      = "all_duplicates"
	KeyAddedVideos        = "added_videos"
	KeyDuplicatesSkipped  = "duplicates_skipped"
	KeyStillLoading       = "still_loading"
	KeyCouldNotOpen       = "could_not_open"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyDefaultRating      = "default_rating"
	KeyDateFormat         = "date_format"
	KeyDateFormatHint     = "date_format_hint"
	KeyNewPassword        = "new_password"
	KeySave               = "save"
	KeySettingsSaved      = "settings_saved"
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

// SetLanguage sets the current language. "system" follows the device locale.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = matchLanguage(string(lang.SystemLocale()))
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// matchLanguage picks the closest translated language for a BCP 47 locale
func matchLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return "en"
	}

	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return "en"
	}
	return languageCodes[index]
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns localized text for key with fmt verbs filled from args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "QVideoPlayer",
		KeyEnterPassword:      "Enter password to continue",
		KeyPassword:           "Password",
		KeyLogin:              "Login",
		KeyIncorrectPassword:  "Incorrect password",
		KeyEnterVideoURL:      "Enter Video URL",
		KeyLabelsPlaceholder:  "Labels (comma separated)",
		KeyAddVideo:           "Add Video",
		KeyNoVideos:           "No videos yet",
		KeyAddedOn:            "Added: %s",
		KeyRatingStars:        "Rating: %s",
		KeyOpenInBrowser:      "Open in Browser",
		KeyUpdateRating:       "Update Rating",
		KeyCopyURL:            "Copy URL",
		KeyDelete:             "Delete",
		KeyCancel:             "Cancel",
		KeyUpdate:             "Update",
		KeyRatingPrompt:       "Enter a rating between 0 and 5:",
		KeyInvalidRating:      "Please enter a valid rating between 0 and 5",
		KeyCopied:             "Copied",
		KeyURLCopied:          "URL copied to clipboard",
		KeyError:              "Error",
		KeyInfo:               "Info",
		KeySuccess:            "Success",
		KeyEnterValidURL:      "Please enter a valid video URL",
		KeyEnterAtLeastOneURL: "Please enter at least one valid URL starting with http:// or https://",
		KeyAllDuplicates:      "All URLs are already in the list. No new videos were added.",
		KeyAddedVideos:        "Added %d videos to the list",
		KeyDuplicatesSkipped:  "%d duplicate URL(s) were skipped.",
		KeyStillLoading:       "Videos are still loading, please try again",
		KeyCouldNotOpen:       "Could not open URL in browser: %s",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyDefaultRating:      "Default Rating",
		KeyDateFormat:         "Date Format",
		KeyDateFormatHint:     "Empty follows the system locale",
		KeyNewPassword:        "New Password",
		KeySave:               "Save",
		KeySettingsSaved:      "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "QVideoPlayer",
		KeyEnterPassword:      "Введите пароль для продолжения",
		KeyPassword:           "Пароль",
		KeyLogin:              "Войти",
		KeyIncorrectPassword:  "Неверный пароль",
		KeyEnterVideoURL:      "Введите URL видео",
		KeyLabelsPlaceholder:  "Метки (через запятую)",
		KeyAddVideo:           "Добавить",
		KeyNoVideos:           "Видео пока нет",
		KeyAddedOn:            "Добавлено: %s",
		KeyRatingStars:        "Оценка: %s",
		KeyOpenInBrowser:      "Открыть в браузере",
		KeyUpdateRating:       "Изменить оценку",
		KeyCopyURL:            "Копировать URL",
		KeyDelete:             "Удалить",
		KeyCancel:             "Отмена",
		KeyUpdate:             "Обновить",
		KeyRatingPrompt:       "Введите оценку от 0 до 5:",
		KeyInvalidRating:      "Пожалуйста, введите оценку от 0 до 5",
		KeyCopied:             "Скопировано",
		KeyURLCopied:          "URL скопирован в буфер обмена",
		KeyError:              "Ошибка",
		KeyInfo:               "Информация",
		KeySuccess:            "Готово",
		KeyEnterValidURL:      "Пожалуйста, введите URL видео",
		KeyEnterAtLeastOneURL: "Введите хотя бы один URL, начинающийся с http:// или https://",
		KeyAllDuplicates:      "Все URL уже есть в списке. Новые видео не добавлены.",
		KeyAddedVideos:        "Добавлено видео: %d",
		KeyDuplicatesSkipped:  "Пропущено дубликатов: %d.",
		KeyStillLoading:       "Список ещё загружается, попробуйте снова",
		KeyCouldNotOpen:       "Не удалось открыть URL в браузере: %s",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyDefaultRating:      "Оценка по умолчанию",
		KeyDateFormat:         "Формат даты",
		KeyDateFormatHint:     "Пусто — как в системе",
		KeyNewPassword:        "Новый пароль",
		KeySave:               "Сохранить",
		KeySettingsSaved:      "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "QVideoPlayer",
		KeyEnterPassword:      "Digite a senha para continuar",
		KeyPassword:           "Senha",
		KeyLogin:              "Entrar",
		KeyIncorrectPassword:  "Senha incorreta",
		KeyEnterVideoURL:      "Digite a URL do vídeo",
		KeyLabelsPlaceholder:  "Etiquetas (separadas por vírgula)",
		KeyAddVideo:           "Adicionar",
		KeyNoVideos:           "Nenhum vídeo ainda",
		KeyAddedOn:            "Adicionado: %s",
		KeyRatingStars:        "Nota: %s",
		KeyOpenInBrowser:      "Abrir no navegador",
		KeyUpdateRating:       "Alterar nota",
		KeyCopyURL:            "Copiar URL",
		KeyDelete:             "Excluir",
		KeyCancel:             "Cancelar",
		KeyUpdate:             "Atualizar",
		KeyRatingPrompt:       "Digite uma nota entre 0 e 5:",
		KeyInvalidRating:      "Por favor, digite uma nota válida entre 0 e 5",
		KeyCopied:             "Copiado",
		KeyURLCopied:          "URL copiada para a área de transferência",
		KeyError:              "Erro",
		KeyInfo:               "Info",
		KeySuccess:            "Sucesso",
		KeyEnterValidURL:      "Por favor, digite uma URL de vídeo válida",
		KeyEnterAtLeastOneURL: "Digite pelo menos uma URL válida começando com http:// ou https://",
		KeyAllDuplicates:      "Todas as URLs já estão na lista. Nenhum vídeo foi adicionado.",
		KeyAddedVideos:        "%d vídeos adicionados à lista",
		KeyDuplicatesSkipped:  "%d URL(s) duplicada(s) ignorada(s).",
		KeyStillLoading:       "Os vídeos ainda estão carregando, tente novamente",
		KeyCouldNotOpen:       "Não foi possível abrir a URL no navegador: %s",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyDefaultRating:      "Nota padrão",
		KeyDateFormat:         "Formato de data",
		KeyDateFormatHint:     "Vazio segue o idioma do sistema",
		KeyNewPassword:        "Nova senha",
		KeySave:               "Salvar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
	}
}
