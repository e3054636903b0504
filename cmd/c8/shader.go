package main

const vertex = `
#version 420

in  vec3 vertPos;
in  vec2 vertTexCoord;
out vec2 fragTexCoord;

void main() {
    fragTexCoord = vertTexCoord;
    gl_Position  = vec4(vertPos, 1);
}
`

const fragment = `
#version 420

uniform vec4 foreground;
uniform vec4 background;

layout (binding = 0) uniform sampler2D screen;

in  vec2 fragTexCoord;
out vec4 outputColor;

void main() {
    // Pixels are stored as 0 or 1 in the red channel, normalized to [0, 1/255].
    float lit = step(0.5, texture(screen, fragTexCoord).r * 255);
    outputColor = mix(background, foreground, lit);
}
`
