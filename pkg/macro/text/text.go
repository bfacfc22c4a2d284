// Package text 提供屏幕区域的 OCR 文字读取（可选能力）
package text

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/yxoo/urmacro/pkg/macro"
	"github.com/yxoo/urmacro/pkg/macro/screen"
	"github.com/yxoo/urmacro/pkg/ocr"
)

// 小于该高度的截图先放大再识别，小号 UI 文字直接识别效果很差
const minRecognizeHeight = 64

// Available 判断 OCR 能力是否可用
func Available() bool {
	return ocr.Available()
}

// ReadText 读取屏幕区域内的文字。
// 带 WithWindow 选项时 (x, y) 为该窗口客户区的相对坐标。
// OCR 模型未安装时返回 macro.ErrFeatureUnavailable。
func ReadText(x, y, width, height int, opts ...macro.Option) (string, error) {
	recognizer, err := ocr.Global()
	if err != nil {
		return "", err
	}

	img, err := screen.CaptureRegion(x, y, width, height, opts...)
	if err != nil {
		return "", err
	}

	return recognizer.AllText(upscaleIfSmall(img))
}

// FindText 在屏幕区域内查找文字的中心位置（部分匹配）。
// 未找到返回 (nil, nil)；坐标与传入区域同一坐标空间。
func FindText(target string, region macro.Region, opts ...macro.Option) (*macro.Point, error) {
	recognizer, err := ocr.Global()
	if err != nil {
		return nil, err
	}

	img, err := screen.CaptureRegion(region.X, region.Y, region.Width, region.Height, opts...)
	if err != nil {
		return nil, err
	}

	scaled := upscaleIfSmall(img)
	factor := float64(img.Bounds().Dy()) / float64(scaled.Bounds().Dy())

	p, err := recognizer.FindText(scaled, target)
	if err != nil || p == nil {
		return nil, err
	}

	return &macro.Point{
		X: region.X + macro.ScaleInt(p.X, factor),
		Y: region.Y + macro.ScaleInt(p.Y, factor),
	}, nil
}

// TextExists 判断区域内是否出现指定文字，任何失败都返回 false
func TextExists(target string, region macro.Region, opts ...macro.Option) bool {
	p, err := FindText(target, region, opts...)
	return err == nil && p != nil
}

// upscaleIfSmall 将过小的截图放大到可识别的尺寸（CatmullRom 插值）
func upscaleIfSmall(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dy() >= minRecognizeHeight || bounds.Dy() == 0 {
		return img
	}

	factor := (minRecognizeHeight + bounds.Dy() - 1) / bounds.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
