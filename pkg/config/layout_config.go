package config

// 窗口与界面布局常量
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 480

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 800

	// ScoreTextX 分数文本左上角X坐标
	ScoreTextX = 16

	// ScoreTextY 分数文本左上角Y坐标
	ScoreTextY = 16

	// HintTextX 失败提示文本的水平中心X坐标
	HintTextX = GameWindowWidth / 2

	// HintTextY 失败提示文本的Y坐标
	HintTextY = GameWindowHeight / 2

	// DebugGlyphWidth ebitenutil 调试字体单个字符宽度（像素）
	DebugGlyphWidth = 6
)

// Colors (RGBA)
var (
	// BackgroundColor 场景背景 #f4f1de
	BackgroundColor = [4]uint8{0xf4, 0xf1, 0xde, 0xff}

	// PlatformColor 平台颜色 #1A2130
	PlatformColor = [4]uint8{0x1a, 0x21, 0x30, 0xff}

	// BallColor 小球颜色 #E07A5F
	BallColor = [4]uint8{0xe0, 0x7a, 0x5f, 0xff}
)
