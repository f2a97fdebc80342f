package shader

import (
	"fmt"

	"github.com/richinsley/glreflect/reflection"
)

// ────────────────────────────── Sample sources ──────────────────────────────

const sampleVertexSource = `#version 430 core
layout (location = 0) in vec2 in_vert;
layout (location = 1) in mat3 in_xform;
out vec2 frag_uv;
uniform Camera {
    mat4 view;
    mat4 proj;
} cam;
void main() {
    frag_uv = in_vert * 0.5 + 0.5;
    gl_Position = cam.proj * cam.view * vec4(in_xform * vec3(in_vert, 1.0), 1.0);
}
`

const sampleTessEvalSource = `#version 430 core
// displaced patch surface
layout(triangles, equal_spacing, ccw) in;
uniform sampler2D u_height;
uniform float u_scale;
void main() {
    vec4 p = gl_TessCoord.x * gl_in[0].gl_Position +
             gl_TessCoord.y * gl_in[1].gl_Position +
             gl_TessCoord.z * gl_in[2].gl_Position;
    p.y += texture(u_height, p.xz).r * u_scale;
    gl_Position = p;
}
`

const sampleFragmentSource = `#version 430 core
in vec2 frag_uv;
layout(location = 0) out vec4 fragColor;

struct Light {
    vec3  position;
    float radius;
    vec4  colour;
};

uniform sampler2D u_texture;
uniform Light     u_lights[4];
uniform int       u_numLights;

layout(std430, binding = 0) buffer Particles {
    vec4 positions[];
} particles;

layout(binding = 0) uniform atomic_uint u_counter;

void main() {
    vec4 c = texture(u_texture, frag_uv);
    for (int i = 0; i < u_numLights; i++)
        c.rgb += u_lights[i].colour.rgb / max(u_lights[i].radius, 1.0);
    c += particles.positions[atomicCounterIncrement(u_counter) % 64u] * 0.0;
    fragColor = c;
}
`

const sampleComputeSource = `#version 430 core
layout(local_size_x = 64) in;
layout(std430, binding = 0) buffer Data {
    uint values[];
};
layout(rgba8, binding = 1) uniform writeonly image2D u_out;
void main() {
    uint i = gl_GlobalInvocationID.x;
    values[i] = values[i] * 2u;
    imageStore(u_out, ivec2(i, 0), vec4(1.0));
}
`

// Sample returns a small source for stage that exercises blocks, samplers
// and signatures. Stages without a sample return "".
func Sample(stage reflection.ShaderStage) string {
	switch stage {
	case reflection.StageVertex:
		return sampleVertexSource
	case reflection.StageTessEval:
		return sampleTessEvalSource
	case reflection.StageFragment:
		return sampleFragmentSource
	case reflection.StageCompute:
		return sampleComputeSource
	}
	return ""
}

// ────────────────────── Shadertoy preamble / user code glue ──────────────────────

// SamplerForChannel maps a Shadertoy input ctype to the sampler declared
// for it.
func SamplerForChannel(ctype string) string {
	switch ctype {
	case "cubemap":
		return "samplerCube"
	case "volume":
		return "sampler3D"
	}
	return "sampler2D"
}

// GeneratePreamble declares the uniforms Shadertoy provides to every image
// pass. channels holds the sampler type for iChannel0..3; empty entries
// default to sampler2D.
func GeneratePreamble(channels [4]string) string {
	base := `#version 300 es
precision highp float;
precision highp int;
precision mediump sampler3D;

#define HW_PERFORMANCE 1

uniform vec3  iResolution;
uniform float iTime;
uniform float iTimeDelta;
uniform float iFrameRate;
uniform int   iFrame;
uniform float iChannelTime[4];
uniform vec3  iChannelResolution[4];
uniform vec4  iMouse;
uniform vec4  iDate;
uniform float iSampleRate;
`
	for i, sampler := range channels {
		if sampler == "" {
			sampler = "sampler2D"
		}
		base += fmt.Sprintf("uniform %s iChannel%d;\n", sampler, i)
	}

	return base + `
out vec4 fragColor;
`
}

func GetMain() string {
	return `
void main(void)
{
    mainImage(fragColor, gl_FragCoord.xy);
}
`
}

// GetFragmentShader combines preamble, common code, pass code and wrapper.
func GetFragmentShader(channels [4]string, common, user string) string {
	return GeneratePreamble(channels) + common + "\n" + user + GetMain()
}
