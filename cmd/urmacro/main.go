package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yxoo/urmacro/internal/logger"
	"github.com/yxoo/urmacro/pkg/config"
	"github.com/yxoo/urmacro/pkg/macro"
	"github.com/yxoo/urmacro/pkg/macro/input"
	"github.com/yxoo/urmacro/pkg/macro/screen"
	"github.com/yxoo/urmacro/pkg/macro/text"
	"github.com/yxoo/urmacro/pkg/macro/window"
	"github.com/yxoo/urmacro/pkg/ocr"
	"github.com/yxoo/urmacro/pkg/permissions"
)

// 版本信息 (可通过 ldflags 注入)
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		windowTitle = flag.String("window", "", "目标窗口标题，坐标相对其客户区")
		tolerance   = flag.Int("tolerance", 10, "颜色容差 (每通道)")
		duration    = flag.Duration("duration", 800*time.Millisecond, "平滑移动时长")
		logLevel    = flag.String("log-level", "", "日志级别 (DEBUG/INFO/WARN/ERROR)")
		logFile     = flag.String("log-file", "", "日志文件路径")
		showVersion = flag.Bool("version", false, "显示版本信息")
		showHelp    = flag.Bool("help", false, "显示帮助信息")
	)

	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	args := flag.Args()
	if *showHelp || len(args) == 0 {
		printHelp()
		return
	}

	// 加载配置，命令行参数优先级高于配置文件
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("[WARN] 加载配置失败: %v\n", err)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))
	if cfg.LogFile != "" {
		if err := logger.SetFile(cfg.LogFile); err != nil {
			fmt.Printf("[WARN] 打开日志文件失败: %v\n", err)
		}
	}

	// OCR 配置来自配置文件，未填的字段用默认查找逻辑补齐；
	// 引擎本身到首次使用时才初始化
	if err := ocr.SetGlobalConfig(cfg.OCR.WithDefaults()); err != nil {
		fmt.Printf("[WARN] 应用 OCR 配置失败: %v\n", err)
	}

	macro.EnableDPIAwareness()

	if granted, instructions := permissions.Ensure(); !granted {
		fmt.Println("[WARN] " + instructions)
	}

	opts := []macro.Option{macro.WithTolerance(*tolerance)}
	if *windowTitle != "" {
		opts = append(opts, macro.WithWindow(*windowTitle))
	}

	if err := runCommand(args[0], args[1:], *windowTitle, *duration, opts); err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func runCommand(cmd string, args []string, windowTitle string, duration time.Duration, opts []macro.Option) error {
	switch cmd {
	case "windows":
		return cmdWindows(args)
	case "focus":
		return cmdFocus(args)
	case "pixel":
		return cmdPixel(args, opts)
	case "check":
		return cmdCheck(args, opts)
	case "findcolor":
		return cmdFindColor(args, opts)
	case "bounds":
		return cmdBounds(args, opts)
	case "press":
		return cmdPress(args)
	case "write":
		return cmdWrite(args)
	case "click":
		return cmdClick(args)
	case "move":
		return cmdMove(args)
	case "smoothmove":
		return cmdSmoothMove(args, duration)
	case "screenshot":
		return cmdScreenshot(args, windowTitle, opts)
	case "ocr":
		return cmdOCR(args, opts)
	default:
		printHelp()
		return fmt.Errorf("未知命令: %s", cmd)
	}
}

// cmdWindows 列出可见窗口
func cmdWindows(args []string) error {
	filter := ""
	if len(args) > 0 {
		filter = args[0]
	}

	windows, err := window.List(filter)
	if err != nil {
		return err
	}

	for _, w := range windows {
		fmt.Printf("%-8d %-24s %s\n", w.PID, w.OwnerName, w.Title)
	}
	fmt.Printf("共 %d 个窗口\n", len(windows))
	return nil
}

// cmdFocus 激活窗口
func cmdFocus(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("用法: urmacro focus <窗口标题> [full]")
	}
	fullScale := len(args) > 1 && args[1] == "full"
	return window.Focus(args[0], true, fullScale)
}

// cmdPixel 读取像素颜色
func cmdPixel(args []string, opts []macro.Option) error {
	x, y, err := parseXY(args)
	if err != nil {
		return err
	}

	c, err := screen.GetPixelColor(x, y, opts...)
	if err != nil {
		return err
	}
	fmt.Printf("(%d, %d) = #%s (R=%d G=%d B=%d)\n", x, y, c.Hex(), c.R, c.G, c.B)
	return nil
}

// cmdCheck 校验像素颜色
func cmdCheck(args []string, opts []macro.Option) error {
	if len(args) < 3 {
		return fmt.Errorf("用法: urmacro check <x> <y> <RRGGBB>")
	}
	x, y, err := parseXY(args[:2])
	if err != nil {
		return err
	}
	target, err := macro.ParseHexColor(args[2])
	if err != nil {
		return err
	}

	if screen.CheckPixelColor(x, y, target, opts...) {
		fmt.Println("匹配")
		return nil
	}
	fmt.Println("不匹配")
	os.Exit(1)
	return nil
}

// cmdFindColor 在区域内查找颜色
func cmdFindColor(args []string, opts []macro.Option) error {
	if len(args) < 5 {
		return fmt.Errorf("用法: urmacro findcolor <x> <y> <width> <height> <RRGGBB>")
	}
	region, err := parseRegion(args[:4])
	if err != nil {
		return err
	}
	target, err := macro.ParseHexColor(args[4])
	if err != nil {
		return err
	}

	p, err := screen.FindColor(region, target, opts...)
	if err != nil {
		return err
	}
	if p == nil {
		fmt.Println("未找到")
		os.Exit(1)
	}
	fmt.Printf("(%d, %d)\n", p.X, p.Y)
	return nil
}

// cmdBounds 计算颜色连通区域的外接矩形
func cmdBounds(args []string, opts []macro.Option) error {
	if len(args) < 6 {
		return fmt.Errorf("用法: urmacro bounds <x> <y> <width> <height> <refX> <refY>")
	}
	region, err := parseRegion(args[:4])
	if err != nil {
		return err
	}
	refX, refY, err := parseXY(args[4:6])
	if err != nil {
		return err
	}

	r, err := screen.FindColorBounds(region, refX, refY, opts...)
	if err != nil {
		return err
	}
	if r == nil {
		fmt.Println("未找到")
		os.Exit(1)
	}
	fmt.Printf("(%d, %d) %dx%d\n", r.X, r.Y, r.Width, r.Height)
	return nil
}

// cmdPress 按下并释放按键
func cmdPress(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("用法: urmacro press <按键> (已知按键: %s)", strings.Join(input.KnownKeys(), " "))
	}
	if len(args) > 1 {
		return input.Hotkey(args...)
	}
	return input.Press(args[0])
}

// cmdWrite 输入文本
func cmdWrite(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("用法: urmacro write <文本> [间隔ms]")
	}
	delay := input.DefaultWriteDelay
	if len(args) > 1 {
		ms, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("无效的间隔: %s", args[1])
		}
		delay = time.Duration(ms) * time.Millisecond
	}
	return input.Write(args[0], delay)
}

// cmdClick 点击指定位置
func cmdClick(args []string) error {
	if len(args) < 2 {
		input.LeftClick()
		return nil
	}
	x, y, err := parseXY(args)
	if err != nil {
		return err
	}
	input.ClickAt(x, y)
	return nil
}

// cmdMove 瞬时移动光标
func cmdMove(args []string) error {
	x, y, err := parseXY(args)
	if err != nil {
		return err
	}
	input.Move(x, y)
	return nil
}

// cmdSmoothMove 平滑移动光标
func cmdSmoothMove(args []string, duration time.Duration) error {
	relative := len(args) > 2 && args[2] == "rel"
	x, y, err := parseXY(args)
	if err != nil {
		return err
	}
	return input.SmoothMove(x, y, duration, relative)
}

// cmdScreenshot 截屏保存到文件
func cmdScreenshot(args []string, windowTitle string, opts []macro.Option) error {
	if len(args) < 1 {
		return fmt.Errorf("用法: urmacro screenshot <输出文件> [x y width height]")
	}

	if len(args) >= 5 {
		region, err := parseRegion(args[1:5])
		if err != nil {
			return err
		}
		captured, err := screen.CaptureRegion(region.X, region.Y, region.Width, region.Height, opts...)
		if err != nil {
			return err
		}
		return screen.SaveImage(captured, args[0])
	}

	if windowTitle != "" {
		captured, err := screen.CaptureWindow(windowTitle)
		if err != nil {
			return err
		}
		return screen.SaveImage(captured, args[0])
	}

	captured, err := screen.CaptureScreen()
	if err != nil {
		return err
	}
	return screen.SaveImage(captured, args[0])
}

// cmdOCR 读取屏幕区域文字
func cmdOCR(args []string, opts []macro.Option) error {
	if !ocr.Available() {
		return fmt.Errorf("%w: 请将模型文件放到 models/ 目录", macro.ErrFeatureUnavailable)
	}
	if len(args) < 4 {
		return fmt.Errorf("用法: urmacro ocr <x> <y> <width> <height>")
	}
	region, err := parseRegion(args[:4])
	if err != nil {
		return err
	}

	result, err := text.ReadText(region.X, region.Y, region.Width, region.Height, opts...)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

func parseXY(args []string) (int, int, error) {
	if len(args) < 2 {
		return 0, 0, fmt.Errorf("缺少坐标参数")
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("无效的 x 坐标: %s", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("无效的 y 坐标: %s", args[1])
	}
	return x, y, nil
}

func parseRegion(args []string) (macro.Region, error) {
	if len(args) < 4 {
		return macro.Region{}, fmt.Errorf("缺少区域参数")
	}
	nums := make([]int, 4)
	for i, arg := range args[:4] {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return macro.Region{}, fmt.Errorf("无效的区域分量: %s", arg)
		}
		nums[i] = n
	}
	return macro.Region{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}, nil
}

// printVersion 打印版本信息
func printVersion() {
	fmt.Printf("urmacro v%s\n", Version)
	fmt.Printf("Build Time: %s\n", BuildTime)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

// printHelp 打印帮助信息
func printHelp() {
	fmt.Println("urmacro - 桌面宏工具（输入模拟 + 屏幕检查）")
	fmt.Println()
	fmt.Println("用法:")
	fmt.Println("  urmacro [选项] <命令> [参数...]")
	fmt.Println()
	fmt.Println("命令:")
	fmt.Println("  windows [过滤词]                    列出可见窗口")
	fmt.Println("  focus <窗口标题> [full]             激活窗口 (full: 最大化)")
	fmt.Println("  pixel <x> <y>                       读取像素颜色")
	fmt.Println("  check <x> <y> <RRGGBB>              校验像素颜色")
	fmt.Println("  findcolor <x> <y> <w> <h> <RRGGBB>  在区域内查找颜色")
	fmt.Println("  bounds <x> <y> <w> <h> <rx> <ry>    求颜色区域外接矩形")
	fmt.Println("  press <按键>...                     按键 (多个按键为组合键)")
	fmt.Println("  write <文本> [间隔ms]               输入文本")
	fmt.Println("  click [x y]                         点击")
	fmt.Println("  move <x> <y>                        瞬时移动光标")
	fmt.Println("  smoothmove <x> <y> [rel]            平滑移动光标")
	fmt.Println("  screenshot <文件> [x y w h]         截屏")
	fmt.Println("  ocr <x> <y> <w> <h>                 读取区域文字")
	fmt.Println()
	fmt.Println("选项:")
	fmt.Println("  -window string     目标窗口标题，坐标相对其客户区")
	fmt.Println("  -tolerance int     颜色容差 (默认 10)")
	fmt.Println("  -duration duration 平滑移动时长 (默认 800ms)")
	fmt.Println("  -log-level string  日志级别")
	fmt.Println("  -log-file string   日志文件路径")
	fmt.Println("  -version           显示版本信息")
	fmt.Println("  -help              显示帮助信息")
	fmt.Println()
	fmt.Println("示例:")
	fmt.Println("  urmacro -window \"记事本\" pixel 100 200")
	fmt.Println("  urmacro findcolor 0 0 800 600 FF0000")
	fmt.Println("  urmacro press ctrl s")
	fmt.Println()
	fmt.Printf("配置文件位置: %s\n", config.GetDefaultManager().GetConfigFile())
}
