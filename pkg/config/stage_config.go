package config

// 舞台（窗口）配置常量

const (
	// StageWidth 舞台逻辑宽度
	StageWidth = 1024

	// StageHeight 舞台逻辑高度
	StageHeight = 768

	// BackgroundColor 舞台背景色（深蓝）
	BackgroundColor uint32 = 0x061A34

	// WindowTitle 窗口标题
	WindowTitle = "Eterna"
)

// 对话框样式常量
const (
	// DialogPanelColor 面板背景色
	DialogPanelColor uint32 = 0x152843

	// DialogPanelAlpha 面板背景透明度
	DialogPanelAlpha = 1.0

	// DialogBorderColor 面板边框色
	DialogBorderColor uint32 = 0xC0DCE7

	// DialogBorderAlpha 面板边框透明度
	DialogBorderAlpha = 0.27

	// DialogTextColor 提示文字颜色
	DialogTextColor uint32 = 0xC0DCE7

	// DialogTitle 确认对话框标题
	DialogTitle = "Are you sure?"

	// DialogPromptFontSize 提示文字字号
	DialogPromptFontSize = 15.0

	// DialogPromptMaxWidth 提示文字最大宽度（超出自动换行）
	DialogPromptMaxWidth = 300.0

	// DialogButtonFontSize 按钮文字字号
	DialogButtonFontSize = 16.0

	// DialogButtonSpacing 按钮之间的水平间距
	DialogButtonSpacing = 12.0

	// DialogButtonGap 提示文字与按钮行之间的垂直间距
	DialogButtonGap = 10.0

	// DialogMarginX 面板内容水平边距
	DialogMarginX = 10.0

	// DialogMarginY 面板内容垂直边距
	DialogMarginY = 10.0

	// DialogTitleSpace 面板标题占用的高度
	DialogTitleSpace = 35.0

	// DialogTitleFontSize 面板标题字号
	DialogTitleFontSize = 13.0

	// DialogFadeDuration 面板淡入时长（秒）
	DialogFadeDuration = 0.3
)

// 提示框（TextBalloon）样式常量
const (
	// TooltipBackgroundColor 提示框背景色
	TooltipBackgroundColor uint32 = 0x000000

	// TooltipBackgroundAlpha 提示框背景透明度
	TooltipBackgroundAlpha = 0.8

	// TooltipFontSize 提示文字字号
	TooltipFontSize = 12.0

	// TooltipPadding 提示框内边距
	TooltipPadding = 6.0

	// TooltipOffsetY 提示框相对指针的垂直偏移（显示在指针上方）
	TooltipOffsetY = -28.0
)
