package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle = "app_title"

	// Backend status panel
	KeyServerStatus  = "server_status"
	KeyChecking      = "checking"
	KeyOnline        = "online"
	KeyOffline       = "offline"
	KeyRefresh       = "refresh"
	KeyConfigured    = "configured"
	KeyNotConfigured = "not_configured"

	// Speech generation panel
	KeyEnterText         = "enter_text"
	KeyPleaseEnterText   = "please_enter_text"
	KeyVoice             = "voice"
	KeyGenerate          = "generate"
	KeyGenerating        = "generating"
	KeyGenerationDone    = "generation_done"
	KeyGenerationFailed  = "generation_failed"
	KeyPlayAudio         = "play_audio"
	KeyCopyAudioURL      = "copy_audio_url"
	KeyAudioURLCopied    = "audio_url_copied"
	KeyNoGeneratedAudio  = "no_generated_audio"
	KeyErrorOpeningAudio = "error_opening_audio"

	// Capture panel
	KeyStartCapture     = "start_capture"
	KeyStopCapture      = "stop_capture"
	KeyCapturing        = "capturing"
	KeyCaptureSaved     = "capture_saved"
	KeyCaptureFailed    = "capture_failed"
	KeyNoCapture        = "no_capture"
	KeyUpload           = "upload"
	KeyUploading        = "uploading"
	KeyUploadDone       = "upload_done"
	KeyUploadFailed     = "upload_failed"
	KeyTranscribeIt     = "transcribe_capture"
	KeyErrorOpeningFile = "error_opening_file"

	// Transcription panel
	KeyAddFile             = "add_file"
	KeyDropHint            = "drop_hint"
	KeyTranscriptionDone   = "transcription_done"
	KeyTranscriptionFailed = "transcription_failed"
	KeyCopyTranscript      = "copy_transcript"
	KeySaveTranscript      = "save_transcript"
	KeyTranscriptCopied    = "transcript_copied"
	KeyTranscriptSaved     = "transcript_saved"
	KeyUnsupportedFile     = "unsupported_file"
	KeyStop                = "stop"
	KeyOpen                = "open"

	// Menu and settings
	KeyFile                = "file"
	KeySettings            = "settings"
	KeyLanguage            = "language"
	KeyMaintenance         = "maintenance"
	KeyCleanupUploads      = "cleanup_uploads"
	KeyCleanupDone         = "cleanup_done"
	KeyCleanupFailed       = "cleanup_failed"
	KeyServerURL           = "server_url"
	KeySampleRate          = "sample_rate"
	KeyCaptureDirectory    = "capture_directory"
	KeyTranscriptDirectory = "transcript_directory"
	KeyAutoCopyTranscript  = "auto_copy_transcript"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyBrowse              = "browse"
	KeySettingsSaved       = "settings_saved"
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
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
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
		KeyAppTitle: "Voice Desk",

		KeyServerStatus:  "Server",
		KeyChecking:      "Checking...",
		KeyOnline:        "Online",
		KeyOffline:       "Offline",
		KeyRefresh:       "Refresh",
		KeyConfigured:    "configured",
		KeyNotConfigured: "not configured",

		KeyEnterText:         "Enter text to convert to speech",
		KeyPleaseEnterText:   "Please enter some text first",
		KeyVoice:             "Voice",
		KeyGenerate:          "Generate",
		KeyGenerating:        "Generating audio...",
		KeyGenerationDone:    "Audio generated",
		KeyGenerationFailed:  "Audio generation failed",
		KeyPlayAudio:         "Play",
		KeyCopyAudioURL:      "Copy URL",
		KeyAudioURLCopied:    "Audio URL copied to clipboard",
		KeyNoGeneratedAudio:  "No generated audio yet",
		KeyErrorOpeningAudio: "Error opening audio",

		KeyStartCapture:     "Start Recording",
		KeyStopCapture:      "Stop Recording",
		KeyCapturing:        "Recording...",
		KeyCaptureSaved:     "Recording saved",
		KeyCaptureFailed:    "Recording failed",
		KeyNoCapture:        "No recording yet",
		KeyUpload:           "Upload",
		KeyUploading:        "Uploading...",
		KeyUploadDone:       "Upload completed",
		KeyUploadFailed:     "Upload failed",
		KeyTranscribeIt:     "Transcribe",
		KeyErrorOpeningFile: "Error opening file",

		KeyAddFile:             "Add File",
		KeyDropHint:            "Drop audio files here or use Add File",
		KeyTranscriptionDone:   "Transcription completed",
		KeyTranscriptionFailed: "Transcription failed",
		KeyCopyTranscript:      "copy",
		KeySaveTranscript:      "save",
		KeyTranscriptCopied:    "Transcript copied to clipboard",
		KeyTranscriptSaved:     "Transcript saved",
		KeyUnsupportedFile:     "Unsupported file type",
		KeyStop:                "Stop",
		KeyOpen:                "open",

		KeyFile:                "File",
		KeySettings:            "Settings",
		KeyLanguage:            "Language",
		KeyMaintenance:         "Maintenance",
		KeyCleanupUploads:      "Clean Up Server Uploads",
		KeyCleanupDone:         "Server uploads cleaned",
		KeyCleanupFailed:       "Cleanup failed",
		KeyServerURL:           "Server URL",
		KeySampleRate:          "Sample Rate (Hz)",
		KeyCaptureDirectory:    "Recordings Directory",
		KeyTranscriptDirectory: "Transcripts Directory",
		KeyAutoCopyTranscript:  "Copy transcripts to clipboard automatically",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyBrowse:              "Browse",
		KeySettingsSaved:       "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle: "Voice Desk",

		KeyServerStatus:  "Сервер",
		KeyChecking:      "Проверка...",
		KeyOnline:        "Доступен",
		KeyOffline:       "Недоступен",
		KeyRefresh:       "Обновить",
		KeyConfigured:    "настроен",
		KeyNotConfigured: "не настроен",

		KeyEnterText:         "Введите текст для озвучивания",
		KeyPleaseEnterText:   "Сначала введите текст",
		KeyVoice:             "Голос",
		KeyGenerate:          "Озвучить",
		KeyGenerating:        "Генерация аудио...",
		KeyGenerationDone:    "Аудио сгенерировано",
		KeyGenerationFailed:  "Ошибка генерации аудио",
		KeyPlayAudio:         "Слушать",
		KeyCopyAudioURL:      "Копировать URL",
		KeyAudioURLCopied:    "URL аудио скопирован",
		KeyNoGeneratedAudio:  "Аудио ещё не сгенерировано",
		KeyErrorOpeningAudio: "Ошибка открытия аудио",

		KeyStartCapture:     "Начать запись",
		KeyStopCapture:      "Остановить запись",
		KeyCapturing:        "Идёт запись...",
		KeyCaptureSaved:     "Запись сохранена",
		KeyCaptureFailed:    "Ошибка записи",
		KeyNoCapture:        "Записей пока нет",
		KeyUpload:           "Загрузить",
		KeyUploading:        "Загрузка...",
		KeyUploadDone:       "Загрузка завершена",
		KeyUploadFailed:     "Ошибка загрузки",
		KeyTranscribeIt:     "Расшифровать",
		KeyErrorOpeningFile: "Ошибка открытия файла",

		KeyAddFile:             "Добавить файл",
		KeyDropHint:            "Перетащите аудиофайлы сюда или нажмите «Добавить файл»",
		KeyTranscriptionDone:   "Расшифровка завершена",
		KeyTranscriptionFailed: "Ошибка расшифровки",
		KeyCopyTranscript:      "копия",
		KeySaveTranscript:      "сохр.",
		KeyTranscriptCopied:    "Текст скопирован в буфер обмена",
		KeyTranscriptSaved:     "Текст сохранён",
		KeyUnsupportedFile:     "Неподдерживаемый тип файла",
		KeyStop:                "Стоп",
		KeyOpen:                "папка",

		KeyFile:                "Файл",
		KeySettings:            "Настройки",
		KeyLanguage:            "Язык",
		KeyMaintenance:         "Обслуживание",
		KeyCleanupUploads:      "Очистить загрузки на сервере",
		KeyCleanupDone:         "Загрузки на сервере очищены",
		KeyCleanupFailed:       "Ошибка очистки",
		KeyServerURL:           "Адрес сервера",
		KeySampleRate:          "Частота дискретизации (Гц)",
		KeyCaptureDirectory:    "Папка записей",
		KeyTranscriptDirectory: "Папка расшифровок",
		KeyAutoCopyTranscript:  "Автоматически копировать расшифровки в буфер",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeyBrowse:              "Обзор",
		KeySettingsSaved:       "Настройки сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle: "Voice Desk",

		KeyServerStatus:  "Servidor",
		KeyChecking:      "Verificando...",
		KeyOnline:        "Online",
		KeyOffline:       "Offline",
		KeyRefresh:       "Atualizar",
		KeyConfigured:    "configurado",
		KeyNotConfigured: "não configurado",

		KeyEnterText:         "Digite o texto para converter em fala",
		KeyPleaseEnterText:   "Digite algum texto primeiro",
		KeyVoice:             "Voz",
		KeyGenerate:          "Gerar",
		KeyGenerating:        "Gerando áudio...",
		KeyGenerationDone:    "Áudio gerado",
		KeyGenerationFailed:  "Falha na geração de áudio",
		KeyPlayAudio:         "Ouvir",
		KeyCopyAudioURL:      "Copiar URL",
		KeyAudioURLCopied:    "URL do áudio copiada",
		KeyNoGeneratedAudio:  "Nenhum áudio gerado ainda",
		KeyErrorOpeningAudio: "Erro ao abrir o áudio",

		KeyStartCapture:     "Iniciar Gravação",
		KeyStopCapture:      "Parar Gravação",
		KeyCapturing:        "Gravando...",
		KeyCaptureSaved:     "Gravação salva",
		KeyCaptureFailed:    "Falha na gravação",
		KeyNoCapture:        "Nenhuma gravação ainda",
		KeyUpload:           "Enviar",
		KeyUploading:        "Enviando...",
		KeyUploadDone:       "Envio concluído",
		KeyUploadFailed:     "Falha no envio",
		KeyTranscribeIt:     "Transcrever",
		KeyErrorOpeningFile: "Erro ao abrir o arquivo",

		KeyAddFile:             "Adicionar Arquivo",
		KeyDropHint:            "Arraste arquivos de áudio aqui ou use Adicionar Arquivo",
		KeyTranscriptionDone:   "Transcrição concluída",
		KeyTranscriptionFailed: "Falha na transcrição",
		KeyCopyTranscript:      "copiar",
		KeySaveTranscript:      "salvar",
		KeyTranscriptCopied:    "Transcrição copiada",
		KeyTranscriptSaved:     "Transcrição salva",
		KeyUnsupportedFile:     "Tipo de arquivo não suportado",
		KeyStop:                "Parar",
		KeyOpen:                "abrir",

		KeyFile:                "Arquivo",
		KeySettings:            "Configurações",
		KeyLanguage:            "Idioma",
		KeyMaintenance:         "Manutenção",
		KeyCleanupUploads:      "Limpar Envios no Servidor",
		KeyCleanupDone:         "Envios no servidor limpos",
		KeyCleanupFailed:       "Falha na limpeza",
		KeyServerURL:           "URL do Servidor",
		KeySampleRate:          "Taxa de Amostragem (Hz)",
		KeyCaptureDirectory:    "Pasta de Gravações",
		KeyTranscriptDirectory: "Pasta de Transcrições",
		KeyAutoCopyTranscript:  "Copiar transcrições automaticamente",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeyBrowse:              "Procurar",
		KeySettingsSaved:       "Configurações salvas!",
	}
}
