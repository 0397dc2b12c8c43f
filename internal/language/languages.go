// Package language provides language detection and localized strings for the
// screening interview. Detection is keyword-based: each supported language
// carries a list of common interview-domain words, and a message is scored by
// how many of them it contains.
package language

import (
	"fmt"
	"strings"
)

// DefaultCode is the interview language used when nothing else is known.
const DefaultCode = "en"

// Language describes one supported interview language.
type Language struct {
	Code       string
	Name       string
	NativeName string
	Flag       string
}

// supported lists languages in presentation order. The order also breaks
// score ties during detection, so English stays first.
var supported = []Language{
	{Code: "en", Name: "English", NativeName: "English", Flag: "🇺🇸"},
	{Code: "es", Name: "Spanish", NativeName: "Español", Flag: "🇪🇸"},
	{Code: "fr", Name: "French", NativeName: "Français", Flag: "🇫🇷"},
	{Code: "de", Name: "German", NativeName: "Deutsch", Flag: "🇩🇪"},
	{Code: "it", Name: "Italian", NativeName: "Italiano", Flag: "🇮🇹"},
	{Code: "pt", Name: "Portuguese", NativeName: "Português", Flag: "🇵🇹"},
	{Code: "ru", Name: "Russian", NativeName: "Русский", Flag: "🇷🇺"},
	{Code: "zh", Name: "Chinese", NativeName: "中文", Flag: "🇨🇳"},
	{Code: "ja", Name: "Japanese", NativeName: "日本語", Flag: "🇯🇵"},
	{Code: "ko", Name: "Korean", NativeName: "한국어", Flag: "🇰🇷"},
	{Code: "hi", Name: "Hindi", NativeName: "हिन्दी", Flag: "🇮🇳"},
	{Code: "bn", Name: "Bengali", NativeName: "বাংলা", Flag: "🇮🇳"},
	{Code: "ta", Name: "Tamil", NativeName: "தமிழ்", Flag: "🇮🇳"},
	{Code: "te", Name: "Telugu", NativeName: "తెలుగు", Flag: "🇮🇳"},
	{Code: "mr", Name: "Marathi", NativeName: "मराठी", Flag: "🇮🇳"},
	{Code: "gu", Name: "Gujarati", NativeName: "ગુજરાતી", Flag: "🇮🇳"},
	{Code: "kn", Name: "Kannada", NativeName: "ಕನ್ನಡ", Flag: "🇮🇳"},
	{Code: "ml", Name: "Malayalam", NativeName: "മലയാളം", Flag: "🇮🇳"},
	{Code: "pa", Name: "Punjabi", NativeName: "ਪੰਜਾਬੀ", Flag: "🇮🇳"},
	{Code: "ur", Name: "Urdu", NativeName: "اردو", Flag: "🇮🇳"},
	{Code: "ar", Name: "Arabic", NativeName: "العربية", Flag: "🇸🇦"},
}

// keywords holds the detection word lists: greetings and courtesy words plus
// the interview-domain vocabulary a candidate is likely to use.
var keywords = map[string][]string{
	"en": {
		"hello", "hi", "hey", "good", "morning", "afternoon", "evening", "name", "email",
		"phone", "experience", "years", "position", "location", "tech", "stack",
		"programming", "language", "framework", "database", "cloud", "tool",
		"thank", "you", "please", "help", "assist", "interview", "candidate",
		"recruitment", "job", "career", "skill", "technology",
	},
	"es": {
		"hola", "buenos", "días", "tardes", "noches", "nombre", "correo", "teléfono",
		"experiencia", "años", "posición", "ubicación", "tecnología", "programación",
		"lenguaje", "marco", "base", "datos", "nube", "herramienta",
		"gracias", "por", "favor", "ayuda", "asistir", "entrevista", "candidato",
		"reclutamiento", "trabajo", "carrera", "habilidad",
	},
	"fr": {
		"bonjour", "salut", "bon", "matin", "après-midi", "soir", "nom", "téléphone",
		"expérience", "années", "poste", "localisation", "technologie", "programmation",
		"langage", "cadre", "données", "nuage", "outil",
		"merci", "s'il", "vous", "plaît", "aider", "assister", "entretien", "candidat",
		"recrutement", "travail", "carrière", "compétence",
	},
	"de": {
		"hallo", "guten", "morgen", "tag", "abend", "telefon", "erfahrung", "jahre",
		"standort", "technologie", "programmierung", "sprache", "rahmen", "datenbank",
		"wolke", "werkzeug",
		"danke", "bitte", "helfen", "unterstützen", "kandidat", "rekrutierung",
		"arbeit", "karriere", "fähigkeit",
	},
	"it": {
		"ciao", "buongiorno", "buonasera", "nome", "telefono", "esperienza", "anni",
		"posizione", "località", "tecnologia", "programmazione", "linguaggio", "strumento",
		"grazie", "per", "favore", "aiutare", "assistere", "intervista", "candidato",
		"reclutamento", "lavoro", "carriera", "abilità",
	},
	"pt": {
		"olá", "bom", "dia", "tarde", "noite", "nome", "telefone", "experiência",
		"anos", "posição", "localização", "tecnologia", "programação", "linguagem",
		"banco", "dados", "nuvem", "ferramenta",
		"obrigado", "por", "favor", "ajudar", "assistir", "entrevista", "candidato",
		"recrutamento", "trabalho", "carreira", "habilidade",
	},
	"ru": {
		"привет", "здравствуйте", "добрый", "утро", "день", "вечер", "имя", "почта",
		"телефон", "опыт", "годы", "позиция", "местоположение", "технология",
		"программирование", "язык", "фреймворк", "база", "данных", "облако", "инструмент",
		"спасибо", "пожалуйста", "помочь", "помощь", "собеседование", "кандидат",
		"рекрутинг", "работа", "карьера", "навык",
	},
	"zh": {
		"你好", "早上好", "下午好", "晚上好", "姓名", "邮箱", "电话", "经验", "职位",
		"位置", "技术", "编程", "语言", "框架", "数据库", "工具",
		"谢谢", "请", "帮助", "协助", "面试", "候选人", "招聘", "工作", "职业", "技能",
	},
	"ja": {
		"こんにちは", "おはよう", "こんばんは", "名前", "メール", "電話", "経験", "職位",
		"場所", "技術", "プログラミング", "言語", "フレームワーク", "データベース",
		"クラウド", "ツール",
		"ありがとう", "お願い", "助ける", "支援", "面接", "候補者", "採用", "仕事",
		"キャリア", "スキル",
	},
	"ko": {
		"안녕하세요", "좋은", "아침", "오후", "저녁", "이름", "이메일", "전화", "경험",
		"직위", "위치", "기술", "프로그래밍", "언어", "프레임워크", "데이터베이스",
		"클라우드", "도구",
		"감사합니다", "부탁", "도움", "지원", "면접", "후보자", "채용", "경력",
	},
	"hi": {
		"नमस्ते", "सुप्रभात", "शुभ", "दोपहर", "शाम", "नाम", "ईमेल", "फोन", "अनुभव",
		"साल", "पद", "स्थान", "तकनीक", "प्रोग्रामिंग", "भाषा", "फ्रेमवर्क", "डेटाबेस",
		"क्लाउड", "उपकरण",
		"धन्यवाद", "कृपया", "मदद", "सहायता", "साक्षात्कार", "उम्मीदवार", "भर्ती",
		"काम", "करियर", "कौशल",
	},
	"bn": {
		"নমস্কার", "শুভ", "সকাল", "দুপুর", "সন্ধ্যা", "নাম", "ইমেইল", "ফোন",
		"অভিজ্ঞতা", "বছর", "পদ", "স্থান", "প্রযুক্তি", "প্রোগ্রামিং", "ভাষা",
		"ফ্রেমওয়ার্ক", "ডাটাবেস", "ক্লাউড", "সরঞ্জাম",
		"ধন্যবাদ", "অনুগ্রহ", "সাহায্য", "সহায়তা", "সাক্ষাৎকার", "প্রার্থী",
		"নিয়োগ", "কাজ", "ক্যারিয়ার", "দক্ষতা",
	},
	"ta": {
		"வணக்கம்", "காலை", "மதியம்", "மாலை", "பெயர்", "மின்னஞ்சல்", "தொலைபேசி",
		"அனுபவம்", "ஆண்டுகள்", "பதவி", "இடம்", "தொழில்நுட்பம்", "நிரலாக்கம்",
		"மொழி", "கட்டமைப்பு", "தரவுத்தளம்", "மேகம்", "கருவி", "என்ன", "உங்கள்",
		"என்", "நான்",
		"நன்றி", "தயவுசெய்து", "உதவி", "ஆதரவு", "நேர்காணல்", "விண்ணப்பதாரர்",
		"மனிதவளம்", "வேலை", "வாழ்க்கை", "திறமை", "கேள்வி", "பதில்",
	},
	"te": {
		"నమస్కారం", "శుభోదయం", "శుభ", "మధ్యాహ్నం", "సాయంత్రం", "పేరు", "ఇమెయిల్",
		"ఫోన్", "అనుభవం", "సంవత్సరాలు", "పదవి", "స్థానం", "టెక్నాలజీ",
		"ప్రోగ్రామింగ్", "భాష", "ఫ్రేమ్‌వర్క్", "డేటాబేస్", "క్లౌడ్", "సాధనం",
		"ఏమిటి", "మీ", "నా", "నేను",
		"ధన్యవాదాలు", "దయచేసి", "సహాయం", "మద్దతు", "ఇంటర్వ్యూ", "అభ్యర్థి",
		"నియామకం", "పని", "వృత్తి", "నైపుణ్యం", "ప్రశ్న", "సమాధానం",
	},
	"mr": {
		"नमस्कार", "सुप्रभात", "दुपार", "संध्याकाळ", "नाव", "वर्षे", "तंत्रज्ञान",
		"साधन",
		"कृपया", "मदत", "सहाय्य", "मुलाखत", "उमेदवार", "भरती", "करिअर", "कौशल्य",
	},
	"gu": {
		"નમસ્તે", "સુપ્રભાત", "શુભ", "બપોર", "સાંજ", "નામ", "ઈમેલ", "ફોન",
		"અનુભવ", "વર્ષ", "પદ", "સ્થાન", "ટેકનોલોજી", "પ્રોગ્રામિંગ", "ભાષા",
		"ફ્રેમવર્ક", "ડેટાબેસ", "ક્લાઉડ", "સાધન", "શું", "તમારું", "મારું", "હું",
		"ધન્યવાદ", "કૃપા", "મદદ", "સહાય", "ઇન્ટરવ્યૂ", "ઉમેદવાર", "ભરતી", "કામ",
		"કારકિર્દી", "કૌશલ્ય", "પ્રશ્ન", "જવાબ",
	},
	"kn": {
		"ನಮಸ್ಕಾರ", "ಶುಭೋದಯ", "ಶುಭ", "ಮಧ್ಯಾಹ್ನ", "ಸಂಜೆ", "ಹೆಸರು", "ಇಮೇಲ್",
		"ಫೋನ್", "ಅನುಭವ", "ವರ್ಷಗಳು", "ಹುದ್ದೆ", "ಸ್ಥಳ", "ತಂತ್ರಜ್ಞಾನ",
		"ಪ್ರೋಗ್ರಾಮಿಂಗ್", "ಭಾಷೆ", "ಫ್ರೇಮ್‌ವರ್ಕ್", "ಡೇಟಾಬೇಸ್", "ಮೋಡ", "ಉಪಕರಣ",
		"ಧನ್ಯವಾದ", "ದಯವಿಟ್ಟು", "ಸಹಾಯ", "ಬೆಂಬಲ", "ಸಂದರ್ಶನ", "ಅಭ್ಯರ್ಥಿ",
		"ನೇಮಕಾತಿ", "ಕೆಲಸ", "ವೃತ್ತಿ", "ಕೌಶಲ್ಯ",
	},
	"ml": {
		"നമസ്കാരം", "സുപ്രഭാതം", "ശുഭ", "ഉച്ച", "വൈകുന്നേരം", "പേര്", "ഇമെയിൽ",
		"ഫോൺ", "അനുഭവം", "വർഷങ്ങൾ", "സ്ഥാനം", "സ്ഥലം", "സാങ്കേതികവിദ്യ",
		"പ്രോഗ്രാമിംഗ്", "ഭാഷ", "ഫ്രെയിംവർക്ക്", "ഡാറ്റാബേസ്", "മേഘം", "ഉപകരണം",
		"എന്താണ്", "നിങ്ങളുടെ", "എന്റെ", "ഞാൻ",
		"നന്ദി", "ദയവായി", "സഹായം", "പിന്തുണ", "ഇന്റർവ്യൂ", "അഭ്യർത്ഥി",
		"നിയമനം", "ജോലി", "കരിയർ", "കഴിവ്", "ചോദ്യം", "ഉത്തരം",
	},
	"pa": {
		"ਸਤ ਸ੍ਰੀ ਅਕਾਲ", "ਸ਼ੁਭ", "ਸਵੇਰੇ", "ਦੁਪਹਿਰ", "ਸ਼ਾਮ", "ਨਾਮ", "ਈਮੇਲ", "ਫੋਨ",
		"ਅਨੁਭਵ", "ਸਾਲ", "ਪਦ", "ਸਥਾਨ", "ਟੈਕਨਾਲੋਜੀ", "ਪ੍ਰੋਗਰਾਮਿੰਗ", "ਭਾਸ਼ਾ",
		"ਫਰੇਮਵਰਕ", "ਡੇਟਾਬੇਸ", "ਕਲਾਊਡ", "ਸਾਧਨ",
		"ਧੰਨਵਾਦ", "ਕਿਰਪਾ", "ਮਦਦ", "ਸਹਾਇਤਾ", "ਇੰਟਰਵਿਊ", "ਉਮੀਦਵਾਰ", "ਭਰਤੀ",
		"ਕੰਮ", "ਕਰੀਅਰ", "ਕੌਸ਼ਲ",
	},
	"ur": {
		"السلام علیکم", "صبح بخیر", "شام بخیر", "ای میل", "فون", "تجربہ", "عہدہ",
		"مقام", "ٹیکنالوجی", "پروگرامنگ", "زبان", "فریم ورک", "ڈیٹا بیس", "کلاؤڈ",
		"آلہ",
		"شکریہ", "براہ کرم", "حمایت", "انٹرویو", "امیدوار", "بھرتی", "کیریئر",
		"مہارت",
	},
	"ar": {
		"مرحبا", "صباح", "الخير", "مساء", "اسم", "بريد", "إلكتروني", "هاتف",
		"خبرة", "سنوات", "منصب", "موقع", "تقنية", "برمجة", "لغة", "إطار", "قاعدة",
		"بيانات", "سحابة", "أداة",
		"شكرا", "فضلك", "مساعدة", "دعم", "مقابلة", "مرشح", "توظيف", "مهنة", "مهارة",
	},
}

// greetings holds the localized welcome line shown at the start of a session.
var greetings = map[string]string{
	"en": "Hello! Welcome to TalentScout. I'm here to help you with your initial screening interview.",
	"es": "¡Hola! Bienvenido a TalentScout. Estoy aquí para ayudarte con tu entrevista de preselección inicial.",
	"fr": "Bonjour ! Bienvenue chez TalentScout. Je suis ici pour vous aider avec votre entretien de présélection initial.",
	"de": "Hallo! Willkommen bei TalentScout. Ich bin hier, um Ihnen bei Ihrem ersten Vorstellungsgespräch zu helfen.",
	"it": "Ciao! Benvenuto in TalentScout. Sono qui per aiutarti con la tua intervista di preselezione iniziale.",
	"pt": "Olá! Bem-vindo ao TalentScout. Estou aqui para ajudá-lo com sua entrevista de triagem inicial.",
	"ru": "Привет! Добро пожаловать в TalentScout. Я здесь, чтобы помочь вам с первоначальным собеседованием.",
	"zh": "你好！欢迎来到TalentScout。我在这里帮助您进行初步筛选面试。",
	"ja": "こんにちは！TalentScoutへようこそ。初回面接のお手伝いをさせていただきます。",
	"ko": "안녕하세요! TalentScout에 오신 것을 환영합니다. 초기 선별 면접을 도와드리겠습니다.",
	"hi": "नमस्ते! TalentScout में आपका स्वागत है। मैं आपकी प्रारंभिक स्क्रीनिंग साक्षात्कार में मदद करने के लिए यहां हूं।",
	"bn": "নমস্কার! TalentScout-এ স্বাগতম। আমি আপনার প্রাথমিক স্ক্রিনিং ইন্টারভিউতে সাহায্য করার জন্য এখানে আছি।",
	"ta": "வணக்கம்! TalentScout-க்கு வரவேற்கிறோம். நான் உங்கள் ஆரம்ப தேர்வு நேர்காணலில் உதவ இங்கே இருக்கிறேன்.",
	"te": "నమస్కారం! TalentScout కి స్వాగతం. నేను మీ ప్రారంభ స్క్రీనింగ్ ఇంటర్వ్యూలో సహాయం చేయడానికి ఇక్కడ ఉన్నాను.",
	"mr": "नमस्कार! TalentScout मध्ये आपले स्वागत आहे. मी तुमच्या प्रारंभिक स्क्रीनिंग मुलाखतीत मदत करण्यासाठी येथे आहे.",
	"gu": "નમસ્તે! TalentScout માં આપનું સ્વાગત છે. હું તમારી પ્રારંભિક સ્ક્રીનિંગ ઇન્ટરવ્યૂમાં મદદ કરવા માટે અહીં છું.",
	"kn": "ನಮಸ್ಕಾರ! TalentScout ಗೆ ಸುಸ್ವಾಗತ. ನಾನು ನಿಮ್ಮ ಆರಂಭಿಕ ಸ್ಕ್ರೀನಿಂಗ್ ಸಂದರ್ಶನದಲ್ಲಿ ಸಹಾಯ ಮಾಡಲು ಇಲ್ಲಿ ಇದ್ದೇನೆ.",
	"ml": "നമസ്കാരം! TalentScout-ലേക്ക് സ്വാഗതം. നിങ്ങളുടെ പ്രാരംഭ സ്ക്രീനിംഗ് ഇന്റർവ്യൂവിൽ സഹായിക്കാൻ ഞാൻ ഇവിടെയുണ്ട്.",
	"pa": "ਸਤ ਸ੍ਰੀ ਅਕਾਲ! TalentScout ਵਿੱਚ ਤੁਹਾਡਾ ਸਵਾਗਤ ਹੈ। ਮੈਂ ਤੁਹਾਡੀ ਸ਼ੁਰੂਆਤੀ ਸਕ੍ਰੀਨਿੰਗ ਇੰਟਰਵਿਊ ਵਿੱਚ ਮਦਦ ਕਰਨ ਲਈ ਇੱਥੇ ਹਾਂ।",
	"ur": "السلام علیکم! TalentScout میں آپ کا خیر مقدم ہے۔ میں آپ کی ابتدائی اسکریننگ انٹرویو میں مدد کرنے کے لیے یہاں ہوں۔",
	"ar": "مرحبا! أهلا وسهلا بك في TalentScout. أنا هنا لمساعدتك في مقابلة الفحص الأولي.",
}

// Supported returns all interview languages in presentation order.
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// Info returns metadata for a language code.
func Info(code string) (Language, bool) {
	for _, lang := range supported {
		if lang.Code == code {
			return lang, true
		}
	}
	return Language{}, false
}

// IsSupported reports whether the code names a supported language.
func IsSupported(code string) bool {
	_, ok := Info(code)
	return ok
}

// Greeting returns the localized welcome line, falling back to English for
// unknown codes.
func Greeting(code string) string {
	if g, ok := greetings[code]; ok {
		return g
	}
	return greetings[DefaultCode]
}

// completions holds the line repeated after an interview has concluded.
// Smaller catalog than greetings; languages without an entry fall back to
// English.
var completions = map[string]string{
	"en": "Thank you for completing the initial interview process. The TalentScout team will be in touch if your profile matches their requirements.",
	"es": "Gracias por completar el proceso de entrevista inicial. El equipo de TalentScout se pondrá en contacto contigo si tu perfil coincide con sus requisitos.",
	"fr": "Merci d'avoir terminé le processus d'entretien initial. L'équipe TalentScout vous contactera si votre profil correspond à ses critères.",
	"de": "Vielen Dank für den Abschluss des ersten Interviews. Das TalentScout-Team wird sich bei Ihnen melden, wenn Ihr Profil zu den Anforderungen passt.",
	"it": "Grazie per aver completato il processo di intervista iniziale. Il team di TalentScout ti contatterà se il tuo profilo corrisponde ai requisiti.",
	"pt": "Obrigado por concluir o processo de entrevista inicial. A equipe TalentScout entrará em contato se o seu perfil corresponder aos requisitos.",
	"ru": "Спасибо за прохождение первоначального собеседования. Команда TalentScout свяжется с вами, если ваш профиль соответствует требованиям.",
	"zh": "感谢您完成初步面试流程。如果您的资料符合要求，TalentScout团队将与您联系。",
	"ja": "初回面接プロセスを完了していただきありがとうございます。プロフィールが要件に合う場合、TalentScoutチームからご連絡いたします。",
	"hi": "प्रारंभिक साक्षात्कार प्रक्रिया पूरी करने के लिए धन्यवाद। यदि आपकी प्रोफ़ाइल आवश्यकताओं से मेल खाती है तो TalentScout टीम आपसे संपर्क करेगी।",
}

// Completion returns the localized post-interview line, falling back to
// English for codes without a translation.
func Completion(code string) string {
	if c, ok := completions[code]; ok {
		return c
	}
	return completions[DefaultCode]
}

// RespondIn appends an instruction asking the model to answer in the given
// language. English and unknown codes pass the prompt through untouched.
func RespondIn(prompt, code string) string {
	if code == "" || code == DefaultCode {
		return prompt
	}
	info, ok := Info(code)
	if !ok {
		return prompt
	}
	return prompt + "\n\nPlease respond in " + info.Name + "."
}

// SelectorPrompt lists every supported language with its flag and code so a
// candidate can pick one explicitly.
func SelectorPrompt() string {
	var b strings.Builder
	b.WriteString("Please select your preferred language for this interview:\n\n")
	for _, lang := range supported {
		fmt.Fprintf(&b, "%s %s (%s) - Type '%s'\n", lang.Flag, lang.NativeName, lang.Name, lang.Code)
	}
	b.WriteString("\nOr simply start typing in your preferred language and I'll detect it automatically.")
	return b.String()
}
