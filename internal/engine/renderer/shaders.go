package renderer

const phongVertexSrc = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vWorldPos;
out vec3 vNormal;
out vec2 vTexCoord;

void main() {
	vec4 world = uModel * vec4(aPosition, 1.0);
	vWorldPos = world.xyz;
	vNormal = mat3(transpose(inverse(uModel))) * aNormal;
	vTexCoord = aTexCoord;
	gl_Position = uProjection * uView * world;
}
`

const phongFragmentSrc = `
#version 410 core

struct Material {
	vec3 ka;
	vec3 kd;
	vec3 ks;
	float ns;
};

struct AmbientLight {
	vec3 color;
	float intensity;
};

struct DirectionalLight {
	vec3 direction;
	vec3 color;
	float intensity;
};

struct SpotLight {
	vec3 position;
	vec3 direction;
	vec3 color;
	float intensity;
	float cosCutoff;
	float kc;
	float kl;
	float kq;
};

in vec3 vWorldPos;
in vec3 vNormal;
in vec2 vTexCoord;

uniform Material uMaterial;
uniform AmbientLight uAmbient;
uniform DirectionalLight uDirectional;
uniform SpotLight uSpot;
uniform vec3 uViewPos;
uniform vec3 uColor;
uniform bool uHasTexture;
uniform sampler2D uTexture;

out vec4 FragColor;

vec3 shade(vec3 lightDir, vec3 lightColor, vec3 n, vec3 v) {
	float diff = max(dot(n, lightDir), 0.0);
	vec3 h = normalize(lightDir + v);
	float spec = diff > 0.0 ? pow(max(dot(n, h), 0.0), uMaterial.ns) : 0.0;
	return lightColor * (uMaterial.kd * diff + uMaterial.ks * spec);
}

void main() {
	vec3 base = uHasTexture ? texture(uTexture, vTexCoord).rgb : uColor;
	vec3 n = length(vNormal) > 0.0 ? normalize(vNormal) : vec3(0.0);
	vec3 v = normalize(uViewPos - vWorldPos);

	vec3 light = uMaterial.ka * uAmbient.color * uAmbient.intensity;
	light += shade(-normalize(uDirectional.direction), uDirectional.color * uDirectional.intensity, n, v);

	vec3 toLight = uSpot.position - vWorldPos;
	float d = length(toLight);
	vec3 l = toLight / max(d, 1e-4);
	if (dot(-l, normalize(uSpot.direction)) >= uSpot.cosCutoff) {
		float att = 1.0 / (uSpot.kc + uSpot.kl * d + uSpot.kq * d * d);
		light += att * shade(l, uSpot.color * uSpot.intensity, n, v);
	}

	FragColor = vec4(base * light, 1.0);
}
`

const lineVertexSrc = `
#version 410 core

layout (location = 0) in vec3 aPosition;

uniform mat4 uViewProjection;

void main() {
	gl_Position = uViewProjection * vec4(aPosition, 1.0);
}
`

const lineFragmentSrc = `
#version 410 core

uniform vec3 uColor;

out vec4 FragColor;

void main() {
	FragColor = vec4(uColor, 1.0);
}
`
