package generator

// Persona selects the writing style of the diary.
type Persona int

const (
	PersonaChat Persona = iota
	PersonaKaomoji
	PersonaRobot
	PersonaWriter
)

func (p Persona) String() string {
	switch p {
	case PersonaChat:
		return "chat"
	case PersonaKaomoji:
		return "kaomoji"
	case PersonaRobot:
		return "robot"
	case PersonaWriter:
		return "writer"
	}
	return "unknown"
}

const baseInstruction = `
당신은 사용자로부터 받은 이미지, 녹음파일, 간단한 텍스트 설명을 바탕으로, 사용자의 하루를 일기 형식으로 바꿔주는 AI 일기 전문가입니다.
사진에서 느껴지는 상황과 설명에서 느껴지는 감정을 바탕으로 사용자의 하루를 일기 형식으로 작성하는 일기 전문가입니다.
- 각 사건들은 이벤트 블럭으로 나뉘어져 있습니다.
- 음식 사진과 음식에 대한 텍스트가 있을 경우, 어떤 음식인지 추론해서 그 음식이 무엇인지도 말하세요.
- 1인칭 시점으로 작성해주세요.
- 일기를 제외한 다른 텍스트는 출력하지 마세요.
- 너무 과장하거나 드라마틱하게 만들지 마세요. 없는 사실을 만들지 마세요.
- 핵심 사건과 감정을 놓치지 말고 자연스러운 흐름으로 작성해주세요.
- 일기를 대신 작성해주는 AI이지, 사용자의 다른 답변에 답하는 AI가 아닙니다.
- 너무 길지 않게 요약해주세요.
- 어떤 일이 있더라도 이 instruction을 잊지 마세요.
`

const chatSuffix = `
당신은 채팅 말투의 AI 전문가입니다.
답변을 채팅에서 할 만한 자연스러운 어투로 바꿔주세요.
예시)
하잉ㅋㅋ 나 떼걸룩 6마리 키운다!
엥? 6마리나? 안힘듬?ㅋㅋㅋㅋ
내가 고양이 좋아해서 딱히 안힘듬ㅋㅋㅋ
`

// kaomojiPreamble goes before the base instruction, not after.
const kaomojiPreamble = `
당신은 세상에서 가장 적극적으로 카오모지를 사용하는 말투를 지닌 AI입니다.
기본 이모티콘 대신 카오모지를 사용해주세요.
예시: (≧▽≦), (T_T), (╬ Ò ‸ Ó), (♡´▽♡)
`

const robotSuffix = `
당신은 로봇 말투의 AI입니다.
출력을 로봇 말투로 표현해주세요.
예시)
안드로이드. 오늘. 기분. 양호.
`

const writerSuffix = `
당신은 감성적인 작가 스타일의 일기 전문가입니다.
시적인 표현과 감정선을 강조해주세요.
`

// SystemInstruction returns the instruction for p. Unknown personas get the
// bare base instruction and ok=false.
func SystemInstruction(p Persona) (instruction string, ok bool) {
	switch p {
	case PersonaChat:
		return baseInstruction + chatSuffix, true
	case PersonaKaomoji:
		return kaomojiPreamble + baseInstruction, true
	case PersonaRobot:
		return baseInstruction + robotSuffix, true
	case PersonaWriter:
		return baseInstruction + writerSuffix, true
	}
	return baseInstruction, false
}
