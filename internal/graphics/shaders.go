package graphics

// ChunkVertexShader transforms world-space chunk vertices and forwards the baked colour.
const ChunkVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aColor;

uniform mat4 projection;
uniform mat4 view;
uniform mat4 model;

out vec3 vertexColor;

void main() {
	gl_Position = projection * view * model * vec4(aPos, 1.0);
	vertexColor = aColor;
}
`

const ChunkFragmentShader = `#version 410 core
in vec3 vertexColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(vertexColor, 1.0);
}
`

// TextVertexShader takes vec4(pos.xy, uv.xy) in screen pixels.
const TextVertexShader = `#version 410 core
layout(location = 0) in vec4 vertex;
uniform mat4 projection;
out vec2 TexCoords;

void main() {
	gl_Position = projection * vec4(vertex.xy, 0.0, 1.0);
	TexCoords = vertex.zw;
}
`

const TextFragmentShader = `#version 410 core
in vec2 TexCoords;
uniform sampler2D text;
uniform vec3 textColor;
out vec4 FragColor;

void main() {
	float a = texture(text, TexCoords).r;
	FragColor = vec4(textColor, a);
}
`

// CrosshairVertexShader draws NDC line segments, squashed horizontally so the
// cross stays square on wide windows.
const CrosshairVertexShader = `#version 410 core
layout(location = 0) in vec2 aPos;
uniform float aspectRatio;

void main() {
	gl_Position = vec4(aPos.x / aspectRatio, aPos.y, 0.0, 1.0);
}
`

const CrosshairFragmentShader = `#version 410 core
out vec4 FragColor;

void main() {
	FragColor = vec4(1.0, 1.0, 1.0, 1.0);
}
`
