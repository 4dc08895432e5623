package upload

import (
	"bytes"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	// webp 仅支持解码
	_ "golang.org/x/image/webp"
)

const (
	// maxImageSide 图片长边上限（px），超出时等比缩小
	maxImageSide = 2000
	jpegQuality  = 85
)

// processImage 图片处理管线：长边不超限时原样返回，
// 超限时用 Lanczos 等比缩小后重新编码。
// webp 没有纯 Go 编码器，缩放后转存为 JPEG；JPEG 编码丢弃 alpha，等效转为 RGB。
// 返回处理后的数据与（可能变化的）扩展名。
func processImage(data []byte, ext string) ([]byte, string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", errors.Wrap(err, "decode image")
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxImageSide && h <= maxImageSide {
		return data, ext, nil
	}

	resized := imaging.Fit(img, maxImageSide, maxImageSide, imaging.Lanczos)

	var buf bytes.Buffer
	switch ext {
	case ".png":
		err = imaging.Encode(&buf, resized, imaging.PNG)
	case ".gif":
		err = imaging.Encode(&buf, resized, imaging.GIF)
	default: // .jpg / .jpeg / .webp
		err = imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
		ext = ".jpg"
	}
	if err != nil {
		return nil, "", errors.Wrap(err, "encode image")
	}

	return buf.Bytes(), ext, nil
}
