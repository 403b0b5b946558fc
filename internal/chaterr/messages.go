package chaterr

import "fadhakker-backend/internal/language"

// messages holds the pre-translated user-facing text per Kind and language.
// The Arabic strings are the canonical ones; the other languages mirror them.
// Lookup always succeeds: missing translations and unsupported tags fall back
// to English.
var messages = map[Kind]map[language.Tag]string{
	KindConfiguration: {
		language.Arabic:  "خطأ في إعدادات الخدمة. يرجى التحقق من الإعدادات",
		language.English: "Service configuration error. Please try again later.",
		language.French:  "Erreur de configuration du service. Veuillez réessayer plus tard.",
		language.Spanish: "Error de configuración del servicio. Inténtelo de nuevo más tarde.",
		language.German:  "Fehler in der Dienstkonfiguration. Bitte versuchen Sie es später erneut.",
	},
	KindQuota: {
		language.Arabic:  "تم تجاوز حد الاستخدام المسموح. يرجى المحاولة بعد قليل",
		language.English: "The usage limit has been exceeded. Please try again in a moment.",
		language.French:  "La limite d'utilisation a été dépassée. Veuillez réessayer dans un instant.",
		language.Spanish: "Se ha superado el límite de uso. Inténtelo de nuevo en un momento.",
		language.German:  "Das Nutzungslimit wurde überschritten. Bitte versuchen Sie es gleich erneut.",
	},
	KindNetwork: {
		language.Arabic:  "خطأ في الاتصال بالخادم. يرجى التحقق من الإنترنت والمحاولة مرة أخرى",
		language.English: "Connection error. Please check your internet connection and try again.",
		language.French:  "Erreur de connexion. Vérifiez votre connexion internet et réessayez.",
		language.Spanish: "Error de conexión. Compruebe su conexión a internet e inténtelo de nuevo.",
		language.German:  "Verbindungsfehler. Bitte prüfen Sie Ihre Internetverbindung und versuchen Sie es erneut.",
	},
	KindTimeout: {
		language.Arabic:  "انتهت مهلة الاستجابة. يرجى المحاولة مرة أخرى",
		language.English: "The response timed out. Please try again.",
		language.French:  "Le délai de réponse a expiré. Veuillez réessayer.",
		language.Spanish: "La respuesta ha tardado demasiado. Inténtelo de nuevo.",
		language.German:  "Die Antwort hat zu lange gedauert. Bitte versuchen Sie es erneut.",
	},
	KindPolicy: {
		language.Arabic:  "عذراً، لا يمكنني الإجابة على هذا السؤال. يرجى إعادة صياغته",
		language.English: "Sorry, I cannot answer this question. Please rephrase it.",
		language.French:  "Désolé, je ne peux pas répondre à cette question. Veuillez la reformuler.",
		language.Spanish: "Lo siento, no puedo responder a esta pregunta. Por favor, reformúlela.",
		language.German:  "Entschuldigung, diese Frage kann ich nicht beantworten. Bitte formulieren Sie sie um.",
	},
	KindEmptyInput: {
		language.Arabic:  "يرجى إدخال سؤال صحيح",
		language.English: "Please enter a valid question.",
		language.French:  "Veuillez saisir une question valide.",
		language.Spanish: "Por favor, introduzca una pregunta válida.",
		language.German:  "Bitte geben Sie eine gültige Frage ein.",
	},
	KindTooLong: {
		language.Arabic:  "السؤال طويل جداً. يرجى تقصيره إلى أقل من 1000 حرف",
		language.English: "The question is too long. Please shorten it to under 1000 characters.",
		language.French:  "La question est trop longue. Veuillez la raccourcir à moins de 1000 caractères.",
		language.Spanish: "La pregunta es demasiado larga. Acórtela a menos de 1000 caracteres.",
		language.German:  "Die Frage ist zu lang. Bitte kürzen Sie sie auf unter 1000 Zeichen.",
	},
	KindUnsafeInput: {
		language.Arabic:  "الرسالة تحتوي على محتوى غير مسموح به",
		language.English: "The message contains content that is not allowed.",
		language.French:  "Le message contient un contenu non autorisé.",
		language.Spanish: "El mensaje contiene contenido no permitido.",
		language.German:  "Die Nachricht enthält unzulässigen Inhalt.",
	},
	KindUnknown: {
		language.Arabic:  "عذراً، حدث خطأ في الخدمة. يرجى المحاولة لاحقاً",
		language.English: "Sorry, a service error occurred. Please try again later.",
		language.French:  "Désolé, une erreur de service s'est produite. Veuillez réessayer plus tard.",
		language.Spanish: "Lo sentimos, se ha producido un error del servicio. Inténtelo de nuevo más tarde.",
		language.German:  "Entschuldigung, es ist ein Dienstfehler aufgetreten. Bitte versuchen Sie es später erneut.",
	},
}

// Message returns the localized text for a Kind. Unsupported tags and missing
// kinds deterministically fall back to the English unknown-error text, so the
// endpoint always has something to say.
func Message(k Kind, lang language.Tag) string {
	byLang, ok := messages[k]
	if !ok {
		byLang = messages[KindUnknown]
	}
	if msg, ok := byLang[lang]; ok {
		return msg
	}
	return byLang[language.English]
}
