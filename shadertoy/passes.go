package shadertoy

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/richinsley/glreflect/logging"
	"github.com/richinsley/glreflect/shader"
)

// Channel is one iChannelN input of a pass.
type Channel struct {
	CType   string
	Channel int
	Sampler Sampler
	// BufferRef names the buffer pass ("A".."D") feeding a buffer input.
	BufferRef string
}

// Pass is a render pass rewritten as a complete WebGL2 fragment shader.
type Pass struct {
	// Name is "Image" or "Buffer A".."Buffer D".
	Name     string
	Channels [4]*Channel
	// Source is the preamble, common code, pass code and main wrapper.
	Source string
}

// ShaderArgs holds the passes of a shader. Complete is false when a pass
// or input was skipped.
type ShaderArgs struct {
	Title    string
	Common   string
	Passes   []Pass
	Complete bool
}

// bufferRef maps '/media/previz/buffer01.png' to "B".
func bufferRef(src string) (string, bool) {
	name := strings.TrimSuffix(src, filepath.Ext(src))
	if len(name) < 2 {
		return "", false
	}
	num, err := strconv.Atoi(name[len(name)-2:])
	if err != nil || num < 0 || num > 3 {
		return "", false
	}
	return string(rune('A' + num)), true
}

func channelsFor(inputs []Input) ([4]*Channel, bool) {
	var channels [4]*Channel
	complete := true
	for _, inp := range inputs {
		ch := &Channel{CType: inp.CType, Channel: inp.Channel, Sampler: inp.Sampler}
		switch inp.CType {
		case "texture", "cubemap", "volume", "mic", "keyboard", "music", "musicstream", "webcam", "video":
		case "buffer":
			ref, ok := bufferRef(inp.Src)
			if !ok {
				logging.LogWarn("invalid buffer reference in src: %s", inp.Src)
				complete = false
				continue
			}
			ch.BufferRef = ref
		default:
			logging.LogWarn("unsupported input type '%s'", inp.CType)
			complete = false
			continue
		}
		if inp.Channel >= 0 && inp.Channel < 4 {
			channels[inp.Channel] = ch
		}
	}
	return channels, complete
}

func samplerTypes(channels [4]*Channel) [4]string {
	var types [4]string
	for i, ch := range channels {
		if ch != nil {
			types[i] = shader.SamplerForChannel(ch.CType)
		}
	}
	return types
}

// ShaderArgsFromJSON builds fragment sources for the image and buffer
// passes of resp. Buffer passes come first, in letter order.
func ShaderArgsFromJSON(resp *ShadertoyResponse) (*ShaderArgs, error) {
	if resp == nil || resp.Shader == nil {
		return nil, fmt.Errorf("shader data must have a 'Shader' key")
	}

	args := &ShaderArgs{Complete: true}
	for _, rPass := range resp.Shader.RenderPass {
		if rPass.Type == "common" {
			args.Common = rPass.Code
		}
	}

	var image *Pass
	buffers := map[string]*Pass{}
	for _, rPass := range resp.Shader.RenderPass {
		switch rPass.Type {
		case "common":
		case "image", "buffer":
			channels, ok := channelsFor(rPass.Inputs)
			args.Complete = args.Complete && ok
			p := &Pass{
				Name:     "Image",
				Channels: channels,
				Source:   shader.GetFragmentShader(samplerTypes(channels), args.Common, rPass.Code),
			}
			if rPass.Type == "image" {
				image = p
				continue
			}
			if rPass.Name == "" {
				return nil, fmt.Errorf("buffer pass has no name, cannot determine index")
			}
			idx := strings.ToUpper(rPass.Name[len(rPass.Name)-1:])
			p.Name = "Buffer " + idx
			buffers[idx] = p
		default:
			logging.LogWarn("unsupported render pass type: %s", rPass.Type)
			args.Complete = false
		}
	}

	keys := make([]string, 0, len(buffers))
	for k := range buffers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args.Passes = append(args.Passes, *buffers[k])
	}
	if image == nil {
		return nil, fmt.Errorf("shader has no image pass")
	}
	args.Passes = append(args.Passes, *image)

	info := resp.Shader.Info
	args.Title = fmt.Sprintf(`"%s" by %s`, info.Name, info.Username)
	return args, nil
}
