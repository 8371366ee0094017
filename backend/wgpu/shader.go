package wgpu

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga"
)

// fillShaderWGSL rasterizes one tessellated triangle per compute pass
// into the packed RGBA pixel buffer. The pass's uniform block selects
// the triangle; the implicit storage barrier between passes preserves
// the painter's-order compositing of the vertex stream. Vertices arrive
// as six floats each (NDC position plus straight-alpha color), three
// per triangle.
const fillShaderWGSL = `
struct FillParams {
    width: u32,
    height: u32,
    tri_index: u32,
    pad: u32,
};

@group(0) @binding(0) var<uniform> params: FillParams;
@group(0) @binding(1) var<storage, read> vertices: array<f32>;
@group(0) @binding(2) var<storage, read_write> pixels: array<u32>;

fn edge(ax: f32, ay: f32, bx: f32, by: f32, px: f32, py: f32) -> f32 {
    return (bx - ax) * (py - ay) - (by - ay) * (px - ax);
}

@compute @workgroup_size(8, 8)
fn main(@builtin(global_invocation_id) gid: vec3<u32>) {
    if (gid.x >= params.width || gid.y >= params.height) {
        return;
    }

    let px = (f32(gid.x) + 0.5) / f32(params.width) * 2.0 - 1.0;
    let py = 1.0 - (f32(gid.y) + 0.5) / f32(params.height) * 2.0;

    let base = params.tri_index * 18u;
    let ax = vertices[base];
    let ay = vertices[base + 1u];
    let bx = vertices[base + 6u];
    let by = vertices[base + 7u];
    let cx = vertices[base + 12u];
    let cy = vertices[base + 13u];

    let e0 = edge(ax, ay, bx, by, px, py);
    let e1 = edge(bx, by, cx, cy, px, py);
    let e2 = edge(cx, cy, ax, ay, px, py);
    let inside = (e0 >= 0.0 && e1 >= 0.0 && e2 >= 0.0) ||
        (e0 <= 0.0 && e1 <= 0.0 && e2 <= 0.0);
    if (!inside) {
        return;
    }

    let sr = vertices[base + 2u];
    let sg = vertices[base + 3u];
    let sb = vertices[base + 4u];
    let sa = vertices[base + 5u];

    let idx = gid.y * params.width + gid.x;
    let dst = pixels[idx];
    let dr = f32(dst & 0xFFu) / 255.0;
    let dg = f32((dst >> 8u) & 0xFFu) / 255.0;
    let db = f32((dst >> 16u) & 0xFFu) / 255.0;
    let da = f32((dst >> 24u) & 0xFFu) / 255.0;

    let outR = sr * sa + dr * (1.0 - sa);
    let outG = sg * sa + dg * (1.0 - sa);
    let outB = sb * sa + db * (1.0 - sa);
    let outA = sa + da * (1.0 - sa);

    pixels[idx] = (u32(outR * 255.0) & 0xFFu) |
        ((u32(outG * 255.0) & 0xFFu) << 8u) |
        ((u32(outB * 255.0) & 0xFFu) << 16u) |
        ((u32(outA * 255.0) & 0xFFu) << 24u);
}
`

// compileFillShader compiles the WGSL source to SPIR-V words.
func compileFillShader() ([]uint32, error) {
	spirv, err := naga.Compile(fillShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("wgpu: shader compilation failed: %w", err)
	}
	return spirvWords(spirv)
}

// spirvWords reinterprets little-endian SPIR-V bytes as 32-bit words
// and validates the module's magic number.
func spirvWords(spirv []byte) ([]uint32, error) {
	if len(spirv) < 4 || len(spirv)%4 != 0 {
		return nil, fmt.Errorf("wgpu: malformed spir-v module: %d bytes", len(spirv))
	}
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	if words[0] != 0x07230203 {
		return nil, fmt.Errorf("wgpu: bad spir-v magic 0x%08x", words[0])
	}
	return words, nil
}
